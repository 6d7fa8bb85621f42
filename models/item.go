package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a finished-goods inventory item. Prices are per-kg and act as the
// fallback cost when no lot cost is known.
type Item struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name" binding:"required"`
	PackingType        PackingType     `json:"packing_type" binding:"required"`
	PackingSize        decimal.Decimal `json:"packing_size"`
	OpeningStock       decimal.Decimal `json:"opening_stock"`
	AvgProductionPrice decimal.Decimal `json:"avg_production_price"`
	AvgSalesPrice      decimal.Decimal `json:"avg_sales_price"`
	NextBaleNumber     int             `json:"next_bale_number"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (i *Item) GetId() string {
	return i.ID
}

// ToKg converts a quantity in the item's packing unit to kilograms. Negative
// quantities pass through unchanged; they represent consumption.
func (i *Item) ToKg(quantity decimal.Decimal) decimal.Decimal {
	if i.PackingType == PackingTypeKg {
		return quantity
	}
	return quantity.Mul(i.PackingSize)
}

// ToUnits is the inverse of ToKg. Only meaningful for packaged items with a
// positive packing size.
func (i *Item) ToUnits(kg decimal.Decimal) decimal.Decimal {
	if i.PackingType == PackingTypeKg || i.PackingSize.IsZero() {
		return kg
	}
	return kg.Div(i.PackingSize)
}
