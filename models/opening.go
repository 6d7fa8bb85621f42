package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OriginalOpening releases raw material from bulk stock into production. It
// reduces available raw stock for its exact combination; finished-goods-origin
// openings additionally reduce item stock through a negative Production.
type OriginalOpening struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date" binding:"required"`
	Combination   Combination     `json:"combination" binding:"required"`
	QuantityUnits decimal.Decimal `json:"quantity_units" binding:"required"`
	TotalKg       decimal.Decimal `json:"total_kg"`
	// ItemID is set on finished-goods-origin openings only.
	ItemID string `json:"item_id,omitempty"`
}

func (o *OriginalOpening) GetId() string { return o.ID }
