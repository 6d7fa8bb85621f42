package controllers

import (
	"net/http"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
	"github.com/gin-gonic/gin"
)

// RawStock answers "how much of this exact combination is left". Query
// parameters omitted mean the "none" sentinel, which is part of the key.
func (ctl *Controller) RawStock(c *gin.Context) {
	comb := models.Combination{
		SupplierID:    c.Query("supplier_id"),
		SubSupplierID: c.Query("sub_supplier_id"),
		TypeID:        c.Query("type_id"),
		ProductID:     c.Query("product_id"),
	}
	available := workflow.AvailableRawStock(ctl.Store.State(), comb)
	warnings := []string{}
	if available.IsNegative() {
		warnings = append(warnings, "raw stock is negative for this combination")
	}
	respondOK(c, gin.H{"combination": comb, "available_kg": available}, warnings)
}

func (ctl *Controller) ItemStock(c *gin.Context) {
	available, err := workflow.AvailableItemStock(ctl.Store.State(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	warnings := []string{}
	if available.IsNegative() {
		warnings = append(warnings, "item stock is negative")
	}
	respondOK(c, gin.H{"item_id": c.Param("id"), "available": available}, warnings)
}

func (ctl *Controller) RawStockSummary(c *gin.Context) {
	summary := workflow.RawStockByCombination(ctl.Store.State())
	type row struct {
		Combination models.Combination `json:"combination"`
		AvailableKg string             `json:"available_kg"`
	}
	rows := make([]row, 0, len(summary))
	for comb, kg := range summary {
		rows = append(rows, row{Combination: comb, AvailableKg: kg.String()})
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
