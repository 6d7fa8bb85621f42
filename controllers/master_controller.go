package controllers

import (
	"net/http"
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/gin-gonic/gin"
)

// Master-data handlers. Entity ids follow the {PREFIX}-{NNN} convention,
// assigned by max-scan over the existing collection.

func (ctl *Controller) CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if supplier.Phone != "" {
		if err := utils.ValidatePhoneNumber(supplier.Phone, utils.CountryCode); err != nil {
			respondError(c, utils.NewValidationError("phone", err.Error()))
			return
		}
	}
	state := ctl.Store.State()
	supplier.ID = models.NextEntityID("SUP", idsOf(state.Suppliers))
	supplier.CreatedAt = time.Now().UTC()
	if err := ctl.Store.Dispatch(store.Add(store.CollectionSuppliers, &supplier)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &supplier, nil)
}

func (ctl *Controller) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if customer.Phone != "" {
		if err := utils.ValidatePhoneNumber(customer.Phone, utils.CountryCode); err != nil {
			respondError(c, utils.NewValidationError("phone", err.Error()))
			return
		}
	}
	state := ctl.Store.State()
	customer.ID = models.NextEntityID("CUS", idsOf(state.Customers))
	customer.CreatedAt = time.Now().UTC()
	if err := ctl.Store.Dispatch(store.Add(store.CollectionCustomers, &customer)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &customer, nil)
}

func (ctl *Controller) CreateAgent(c *gin.Context) {
	var agent models.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state := ctl.Store.State()
	agent.ID = models.NextEntityID("AGT", idsOf(state.Agents))
	if err := ctl.Store.Dispatch(store.Add(store.CollectionAgents, &agent)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &agent, nil)
}

func (ctl *Controller) CreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !item.PackingType.IsValid() {
		respondError(c, utils.NewValidationError("packing_type", "unknown packing type"))
		return
	}
	if item.PackingType != models.PackingTypeKg && !item.PackingSize.IsPositive() {
		respondError(c, utils.NewValidationError("packing_size", "packing size must be positive for packaged items"))
		return
	}
	state := ctl.Store.State()
	item.ID = models.NextEntityID("ITM", idsOf(state.Items))
	item.CreatedAt = time.Now().UTC()
	if err := ctl.Store.Dispatch(store.Add(store.CollectionItems, &item)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &item, nil)
}

func (ctl *Controller) CreateOriginalType(c *gin.Context) {
	var originalType models.OriginalType
	if err := c.ShouldBindJSON(&originalType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	originalType.Synthetic = false
	state := ctl.Store.State()
	originalType.ID = models.NextEntityID("TYP", idsOf(state.OriginalTypes))
	if err := ctl.Store.Dispatch(store.Add(store.CollectionOriginalTypes, &originalType)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &originalType, nil)
}

func (ctl *Controller) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state := ctl.Store.State()
	product.ID = models.NextEntityID("PRD", idsOf(state.Products))
	if err := ctl.Store.Dispatch(store.Add(store.CollectionProducts, &product)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &product, nil)
}

func idsOf[T store.Entity](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
