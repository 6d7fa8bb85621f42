package workflow

import (
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/shopspring/decimal"
)

// Derived stock queries. Nothing here is cached or stored: every call
// recomputes from the full transaction history, so there is no invalidation
// to get wrong. Negative results are legal; callers surface them as warnings.

// AvailableRawStock is purchased kg minus opened kg for one exact combination.
// The empty-string "none" sentinel on sub-supplier / product is part of the
// key; a partial match never counts.
func AvailableRawStock(state *store.State, comb models.Combination) decimal.Decimal {
	available := decimal.Zero
	for _, p := range state.Purchases {
		available = available.Add(p.KgForCombination(comb))
	}
	for _, o := range state.OriginalOpenings {
		if o.Combination.Equals(comb) {
			available = available.Sub(o.TotalKg)
		}
	}
	return available
}

// AvailableItemStock is opening stock plus signed production minus quantities
// on Posted invoices, in the item's packing unit. Unposted invoices do not
// deduct.
func AvailableItemStock(state *store.State, itemID string) (decimal.Decimal, error) {
	item, ok := state.Items[itemID]
	if !ok {
		return decimal.Zero, utils.ErrorRecordNotFound
	}
	available := item.OpeningStock
	for _, p := range state.Productions {
		if p.ItemID == itemID {
			available = available.Add(p.Quantity)
		}
	}
	for _, inv := range state.SalesInvoices {
		if inv.Status != models.InvoiceStatusPosted {
			continue
		}
		for _, line := range inv.Lines {
			if line.ItemID == itemID {
				available = available.Sub(line.Quantity)
			}
		}
	}
	return available, nil
}

// RawStockByCombination lists every combination ever purchased with its
// current availability.
func RawStockByCombination(state *store.State) map[models.Combination]decimal.Decimal {
	result := map[models.Combination]decimal.Decimal{}
	for _, p := range state.Purchases {
		for _, comb := range p.Combinations() {
			if _, seen := result[comb]; !seen {
				result[comb] = AvailableRawStock(state, comb)
			}
		}
	}
	return result
}

// combinationAvgCostPerKg recomputes the weighted-average landed cost per kg
// over every purchase matching the combination. Used when an opening is
// posted; zero when nothing matches (the caller warns).
func combinationAvgCostPerKg(state *store.State, comb models.Combination) decimal.Decimal {
	totalCost := decimal.Zero
	totalKg := decimal.Zero
	for _, p := range state.Purchases {
		kg := p.KgForCombination(comb)
		if kg.IsZero() {
			continue
		}
		lc, err := CalculateLandedCost(p)
		if err != nil {
			continue
		}
		totalCost = totalCost.Add(kg.Mul(lc.CostPerKg))
		totalKg = totalKg.Add(kg)
	}
	if totalKg.IsZero() {
		return decimal.Zero
	}
	return totalCost.Div(totalKg)
}
