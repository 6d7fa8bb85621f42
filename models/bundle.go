package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BundleLine is one (item, quantity, rate) line on a finished-goods purchase.
// Quantity is in the item's packing unit; rate is per unit in the purchase
// currency.
type BundleLine struct {
	ItemID   string          `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// BundlePurchase is a finished-goods purchase ("FGP"). Saving one spawns a
// Production record per line, which is the stock-increasing side.
type BundlePurchase struct {
	ID                string          `json:"id"`
	Date              time.Time       `json:"date" binding:"required"`
	SupplierID        string          `json:"supplier_id" binding:"required"`
	Lines             []BundleLine    `json:"lines" binding:"required,dive"`
	Currency          string          `json:"currency" binding:"required,currency"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`
	DiscountSurcharge decimal.Decimal `json:"discount_surcharge"`
	Freight           CostCharge      `json:"freight"`
	Clearing          CostCharge      `json:"clearing"`
	Commission        CostCharge      `json:"commission"`
	ContainerNumber   string          `json:"container_number"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (b *BundlePurchase) GetId() string { return b.ID }

func (b *BundlePurchase) ItemValueFC() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.Lines {
		total = total.Add(line.Quantity.Mul(line.Rate))
	}
	return total
}
