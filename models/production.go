package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production records a signed stock movement for an item, in the item's
// packing unit. Negative quantities represent consumption (re-baling,
// conversion to raw material). Productions exist only as side effects of
// purchases, manual entries, transfers and stock-opening reversals.
type Production struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date" binding:"required"`
	ItemID      string          `json:"item_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	StartBale   int             `json:"start_bale,omitempty"`
	EndBale     int             `json:"end_bale,omitempty"`
	Description string          `json:"description"`
}

func (p *Production) GetId() string { return p.ID }
