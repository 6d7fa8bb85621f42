package controllers

import (
	"errors"
	"net/http"

	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller bundles the shared collaborators every handler needs.
type Controller struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func New(st *store.Store, logger *logrus.Logger) *Controller {
	return &Controller{Store: st, Logger: logger}
}

// respondError maps an error to its HTTP shape: validation failures are 400
// with the field map, missing records 404, anything else is a persistence
// failure surfaced as a transient notification. No retry happens anywhere;
// the user resubmits.
func respondError(c *gin.Context, err error) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "fields": ve.Fields})
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrorZeroWeight), errors.Is(err, utils.ErrorUnbalanced):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not save changes: " + err.Error()})
	}
}

func respondOK(c *gin.Context, data any, warnings []string) {
	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "warnings": warnings})
}
