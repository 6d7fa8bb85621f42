package controllers

import (
	"net/http"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateSalesInvoice(c *gin.Context) {
	var invoice models.SalesInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	warnings, err := workflow.CreateSalesInvoiceWorkflow(ctl.Store, ctl.Logger, &invoice)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &invoice, warnings)
}

func (ctl *Controller) PostSalesInvoice(c *gin.Context) {
	warnings, err := workflow.PostSalesInvoiceWorkflow(ctl.Store, ctl.Logger, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": c.Param("id"), "status": models.InvoiceStatusPosted}, warnings)
}

func (ctl *Controller) CreateOrder(c *gin.Context) {
	var order models.OngoingOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := workflow.CreateOrderWorkflow(ctl.Store, ctl.Logger, &order); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &order, nil)
}

type shipOrderRequest struct {
	Shipments []workflow.ShipmentLine `json:"shipments"`
}

func (ctl *Controller) ShipOrder(c *gin.Context) {
	var req shipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invoice, warnings, err := workflow.ShipOrderWorkflow(ctl.Store, ctl.Logger, c.Param("id"), req.Shipments)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, invoice, warnings)
}

func (ctl *Controller) CancelOrder(c *gin.Context) {
	if err := workflow.CancelOrderWorkflow(ctl.Store, ctl.Logger, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": c.Param("id"), "status": models.OrderStatusCancelled}, nil)
}

func (ctl *Controller) CreateOpening(c *gin.Context) {
	var opening models.OriginalOpening
	if err := c.ShouldBindJSON(&opening); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	warnings, err := workflow.ProcessOpeningWorkflow(ctl.Store, ctl.Logger, &opening)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &opening, warnings)
}
