package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderLine struct {
	ItemID     string          `json:"item_id" binding:"required"`
	OrderedQty decimal.Decimal `json:"ordered_qty" binding:"required"`
	ShippedQty decimal.Decimal `json:"shipped_qty"`
	Rate       decimal.Decimal `json:"rate"`
}

func (l OrderLine) Remaining() decimal.Decimal {
	return l.OrderedQty.Sub(l.ShippedQty)
}

// OngoingOrder tracks a customer order shipped in parts. Shipment converts
// remaining quantity into an Unposted sales invoice; status derives from the
// line shipped quantities. Cancelled is terminal.
type OngoingOrder struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date" binding:"required"`
	CustomerID string      `json:"customer_id" binding:"required"`
	Lines      []OrderLine `json:"lines" binding:"required,dive"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (o *OngoingOrder) GetId() string { return o.ID }

// DeriveStatus recomputes the status from line quantities. Cancelled orders
// keep their status.
func (o *OngoingOrder) DeriveStatus() OrderStatus {
	if o.Status == OrderStatusCancelled {
		return OrderStatusCancelled
	}
	anyShipped := false
	allShipped := true
	for _, line := range o.Lines {
		if line.ShippedQty.IsPositive() {
			anyShipped = true
		}
		if line.Remaining().IsPositive() {
			allShipped = false
		}
	}
	switch {
	case allShipped:
		return OrderStatusCompleted
	case anyShipped:
		return OrderStatusPartiallyShipped
	default:
		return OrderStatusActive
	}
}
