package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/JunaidMachiyara/usmanglobal-books/workflow"
	"github.com/gin-gonic/gin"
)

type priceConvertRequest struct {
	Direction workflow.PriceDirection `json:"direction" binding:"required"`
	// Confirmed guards the double-apply hazard: converting twice compounds
	// silently, so the client must state it showed the confirmation dialog.
	Confirmed bool `json:"confirmed"`
}

func (ctl *Controller) ConvertItemPrices(c *gin.Context) {
	var req priceConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Confirmed {
		respondError(c, utils.NewValidationError("confirmed", "price conversion must be confirmed; applying it twice compounds"))
		return
	}
	converted, err := workflow.ConvertItemPrices(ctl.Store, ctl.Logger, req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"converted": converted}, nil)
}

// BulkPriceUpdate accepts a multipart upload, CSV or XLSX by extension.
func (ctl *Controller) BulkPriceUpdate(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	var rows []workflow.PriceRow
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, err = workflow.ParsePriceXLSX(f)
	default:
		rows, err = workflow.ParsePriceCSV(f)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	updated, warnings, err := workflow.BulkUpdatePrices(ctl.Store, ctl.Logger, rows)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"updated": updated}, warnings)
}

// BackupDownload streams the full-state snapshot.
func (ctl *Controller) BackupDownload(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.Header("Content-Type", "application/json")
	if err := ctl.Store.Snapshot().Write(c.Writer); err != nil {
		respondError(c, err)
	}
}

// BackupRestore overwrites the whole state from an uploaded snapshot.
// Irreversible; gated on admin.
func (ctl *Controller) BackupRestore(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	snap, err := store.ReadSnapshot(f)
	if err != nil {
		respondError(c, utils.NewValidationError("file", "invalid snapshot: "+err.Error()))
		return
	}
	if err := ctl.Store.Dispatch(store.Command{Type: store.CommandRestoreState, Snapshot: snap}); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"restored": true}, []string{"restore performed a full overwrite; this cannot be undone"})
}

// HardReset clears every transactional collection, keeping master data.
func (ctl *Controller) HardReset(c *gin.Context) {
	if err := ctl.Store.Dispatch(store.Command{Type: store.CommandHardResetTransactions}); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"reset": true}, nil)
}
