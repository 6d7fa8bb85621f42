package workflow

import (
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/shopspring/decimal"
)

// LandedCost is the USD cost breakdown of a purchase. Every component carries
// the conversion rate captured on the transaction, never a later lookup.
type LandedCost struct {
	ItemValueFC   decimal.Decimal `json:"item_value_fc"`
	ItemValueUSD  decimal.Decimal `json:"item_value_usd"`
	FreightUSD    decimal.Decimal `json:"freight_usd"`
	ClearingUSD   decimal.Decimal `json:"clearing_usd"`
	CommissionUSD decimal.Decimal `json:"commission_usd"`
	TotalUSD      decimal.Decimal `json:"total_usd"`
	TotalKg       decimal.Decimal `json:"total_kg"`
	CostPerKg     decimal.Decimal `json:"cost_per_kg"`
}

// CalculateLandedCost prices a raw purchase. A zero total weight is a
// validation failure, not an Infinity.
func CalculateLandedCost(p *models.Purchase) (*LandedCost, error) {
	totalKg := p.TotalKg()
	if totalKg.IsZero() {
		return nil, utils.ErrorZeroWeight
	}
	itemValueFC := p.ItemValueFC()
	itemValueUSD := models.ToUSD(itemValueFC, p.ConversionRate).Add(p.DiscountSurcharge)
	freightUSD := p.Freight.USD()
	clearingUSD := p.Clearing.USD()
	commissionUSD := p.Commission.USD()
	totalUSD := itemValueUSD.Add(freightUSD).Add(clearingUSD).Add(commissionUSD)

	return &LandedCost{
		ItemValueFC:   itemValueFC,
		ItemValueUSD:  itemValueUSD,
		FreightUSD:    freightUSD,
		ClearingUSD:   clearingUSD,
		CommissionUSD: commissionUSD,
		TotalUSD:      totalUSD,
		TotalKg:       totalKg,
		CostPerKg:     totalUSD.Div(totalKg),
	}, nil
}

// CalculateBundleLandedCost prices a finished-goods purchase. Quantities are
// in packing units, so the kg total needs the item master for conversion.
func CalculateBundleLandedCost(b *models.BundlePurchase, items map[string]*models.Item) (*LandedCost, error) {
	totalKg := decimal.Zero
	for _, line := range b.Lines {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, utils.ErrorRecordNotFound
		}
		totalKg = totalKg.Add(item.ToKg(line.Quantity))
	}
	if totalKg.IsZero() {
		return nil, utils.ErrorZeroWeight
	}
	itemValueFC := b.ItemValueFC()
	itemValueUSD := models.ToUSD(itemValueFC, b.ConversionRate).Add(b.DiscountSurcharge)
	freightUSD := b.Freight.USD()
	clearingUSD := b.Clearing.USD()
	commissionUSD := b.Commission.USD()
	totalUSD := itemValueUSD.Add(freightUSD).Add(clearingUSD).Add(commissionUSD)

	return &LandedCost{
		ItemValueFC:   itemValueFC,
		ItemValueUSD:  itemValueUSD,
		FreightUSD:    freightUSD,
		ClearingUSD:   clearingUSD,
		CommissionUSD: commissionUSD,
		TotalUSD:      totalUSD,
		TotalKg:       totalKg,
		CostPerKg:     totalUSD.Div(totalKg),
	}, nil
}
