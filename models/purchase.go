package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Combination is the raw-material stock key. Empty SubSupplierID / ProductID
// mean "none" and are part of the key; a partial match is never a match.
type Combination struct {
	SupplierID    string `json:"supplier_id"`
	SubSupplierID string `json:"sub_supplier_id"`
	TypeID        string `json:"type_id"`
	ProductID     string `json:"product_id"`
}

func (c Combination) Equals(other Combination) bool {
	return c == other
}

// PurchaseLine is one (type, weight, rate) tuple on a raw purchase. Weight is
// in kilograms; rate is per kg in the purchase currency.
type PurchaseLine struct {
	TypeID   string          `json:"type_id" binding:"required"`
	WeightKg decimal.Decimal `json:"weight_kg" binding:"required"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// CostCharge is an additive landed-cost component (freight, clearing,
// commission) carrying its own currency snapshot and agent.
type CostCharge struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	AgentID        string          `json:"agent_id"`
}

func (c CostCharge) USD() decimal.Decimal {
	return ToUSD(c.Amount, c.ConversionRate)
}

func (c CostCharge) Present() bool {
	return c.Amount.IsPositive()
}

// Purchase is a raw-material ("original") purchase. The id is immutable once
// finalized; corrections go through the rate corrector, deletion only through
// the date-range bulk tool, both cascading to dependent records.
type Purchase struct {
	ID                string          `json:"id"`
	Date              time.Time       `json:"date" binding:"required"`
	SupplierID        string          `json:"supplier_id" binding:"required"`
	SubSupplierID     string          `json:"sub_supplier_id"`
	ProductID         string          `json:"product_id"`
	Lines             []PurchaseLine  `json:"lines" binding:"required,dive"`
	Currency          string          `json:"currency" binding:"required,currency"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`
	DiscountSurcharge decimal.Decimal `json:"discount_surcharge"`
	Freight           CostCharge      `json:"freight"`
	Clearing          CostCharge      `json:"clearing"`
	Commission        CostCharge      `json:"commission"`
	ContainerNumber   string          `json:"container_number"`
	BatchNumber       string          `json:"batch_number"`
	DivisionID        string          `json:"division_id"`
	SubDivisionID     string          `json:"sub_division_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (p *Purchase) GetId() string { return p.ID }

// TotalKg sums line weights. Lines are already in kg.
func (p *Purchase) TotalKg() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.WeightKg)
	}
	return total
}

// ItemValueFC is the line total in the purchase currency, before the
// discount/surcharge (which is entered in USD).
func (p *Purchase) ItemValueFC() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.WeightKg.Mul(line.Rate))
	}
	return total
}

// Combinations lists the raw-stock keys this purchase feeds, one per line type.
func (p *Purchase) Combinations() []Combination {
	combs := make([]Combination, 0, len(p.Lines))
	for _, line := range p.Lines {
		combs = append(combs, Combination{
			SupplierID:    p.SupplierID,
			SubSupplierID: p.SubSupplierID,
			TypeID:        line.TypeID,
			ProductID:     p.ProductID,
		})
	}
	return combs
}

// KgForCombination sums this purchase's weight landing on the given key.
func (p *Purchase) KgForCombination(comb Combination) decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		lineComb := Combination{
			SupplierID:    p.SupplierID,
			SubSupplierID: p.SubSupplierID,
			TypeID:        line.TypeID,
			ProductID:     p.ProductID,
		}
		if lineComb.Equals(comb) {
			total = total.Add(line.WeightKg)
		}
	}
	return total
}
