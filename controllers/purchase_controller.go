package controllers

import (
	"net/http"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (ctl *Controller) CreatePurchase(c *gin.Context) {
	var purchase models.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc, err := workflow.ProcessPurchaseWorkflow(ctl.Store, ctl.Logger, &purchase)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"purchase": &purchase, "landed_cost": lc}, nil)
}

// LandedCostPreview prices a purchase without saving it; used for voucher
// printing and form totals.
func (ctl *Controller) LandedCostPreview(c *gin.Context) {
	var purchase models.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc, err := workflow.CalculateLandedCost(&purchase)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, lc, nil)
}

type rateCorrectionRequest struct {
	CorrectedTotal decimal.Decimal `json:"corrected_total" binding:"required"`
}

func (ctl *Controller) CorrectPurchaseRate(c *gin.Context) {
	var req rateCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc, warnings, err := workflow.CorrectPurchaseRate(ctl.Store, ctl.Logger, c.Param("id"), req.CorrectedTotal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, lc, warnings)
}

type rangeDeleteRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (ctl *Controller) DeletePurchasesInRange(c *gin.Context) {
	var req rangeDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := utils.ParseDate(req.From)
	if err != nil {
		respondError(c, utils.NewValidationError("from", "invalid date"))
		return
	}
	to, err := utils.ParseDate(req.To)
	if err != nil {
		respondError(c, utils.NewValidationError("to", "invalid date"))
		return
	}
	reports, err := workflow.DeletePurchasesInRange(ctl.Store, ctl.Logger, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	warnings := []string{}
	for _, r := range reports {
		warnings = utils.MergeStringSlices(warnings, r.Warnings)
	}
	respondOK(c, reports, warnings)
}

func (ctl *Controller) CreateBundlePurchase(c *gin.Context) {
	var bundle models.BundlePurchase
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc, err := workflow.ProcessBundlePurchaseWorkflow(ctl.Store, ctl.Logger, &bundle)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"bundle": &bundle, "landed_cost": lc}, nil)
}

func (ctl *Controller) TransferBaleToRaw(c *gin.Context) {
	var input workflow.BaleToRawInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	purchase, warnings, err := workflow.ProcessBaleToRawWorkflow(ctl.Store, ctl.Logger, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, purchase, warnings)
}

// DeleteDocument cascades a single source document through the correction
// engine. The collection comes from the route so the same handler serves
// purchases, bundles, invoices, openings and orders.
func (ctl *Controller) DeleteDocument(collection store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := workflow.DeleteWithCascade(ctl.Store, ctl.Logger, collection, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, report, report.Warnings)
	}
}
