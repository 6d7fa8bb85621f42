package workflow

import (
	"errors"
	"testing"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
)

// Regression for the AED container: 1000 kg at 2.5 AED/kg, conversion rate
// 0.2725, freight 50 USD.
func TestCalculateLandedCostForeignCurrencyPurchase(t *testing.T) {
	lc, err := CalculateLandedCost(aedPurchase())
	if err != nil {
		t.Fatalf("CalculateLandedCost: %v", err)
	}
	if !lc.ItemValueFC.Equal(dec("2500")) {
		t.Fatalf("itemValueFC = %s, want 2500", lc.ItemValueFC)
	}
	if !lc.ItemValueUSD.Equal(dec("681.25")) {
		t.Fatalf("itemValueUSD = %s, want 681.25", lc.ItemValueUSD)
	}
	if !lc.TotalUSD.Equal(dec("731.25")) {
		t.Fatalf("totalUSD = %s, want 731.25", lc.TotalUSD)
	}
	if !lc.CostPerKg.Equal(dec("0.73125")) {
		t.Fatalf("costPerKg = %s, want 0.73125", lc.CostPerKg)
	}
}

func TestCalculateLandedCostDiscountSurchargeIsUSD(t *testing.T) {
	p := aedPurchase()
	p.DiscountSurcharge = dec("-31.25")

	lc, err := CalculateLandedCost(p)
	if err != nil {
		t.Fatalf("CalculateLandedCost: %v", err)
	}
	if !lc.ItemValueUSD.Equal(dec("650")) {
		t.Fatalf("itemValueUSD = %s, want 650", lc.ItemValueUSD)
	}
	if !lc.TotalUSD.Equal(dec("700")) {
		t.Fatalf("totalUSD = %s, want 700", lc.TotalUSD)
	}
}

func TestCalculateLandedCostZeroWeight(t *testing.T) {
	p := aedPurchase()
	p.Lines = nil

	_, err := CalculateLandedCost(p)
	if !errors.Is(err, utils.ErrorZeroWeight) {
		t.Fatalf("err = %v, want ErrorZeroWeight", err)
	}
}

func TestCalculateBundleLandedCostConvertsPackingUnits(t *testing.T) {
	st := newTestStore(t)
	bundle := &models.BundlePurchase{
		Date:           testDate,
		SupplierID:     "SUP-001",
		Lines:          []models.BundleLine{{ItemID: "ITM-001", Quantity: dec("10"), Rate: dec("50")}},
		Currency:       "USD",
		ConversionRate: dec("1"),
	}

	lc, err := CalculateBundleLandedCost(bundle, st.State().Items)
	if err != nil {
		t.Fatalf("CalculateBundleLandedCost: %v", err)
	}
	// 10 bales of 100 kg each.
	if !lc.TotalKg.Equal(dec("1000")) {
		t.Fatalf("totalKg = %s, want 1000", lc.TotalKg)
	}
	if !lc.ItemValueUSD.Equal(dec("500")) {
		t.Fatalf("itemValueUSD = %s, want 500", lc.ItemValueUSD)
	}
	if !lc.CostPerKg.Equal(dec("0.5")) {
		t.Fatalf("costPerKg = %s, want 0.5", lc.CostPerKg)
	}
}

func TestCalculateBundleLandedCostUnknownItem(t *testing.T) {
	bundle := &models.BundlePurchase{
		SupplierID: "SUP-001",
		Lines:      []models.BundleLine{{ItemID: "ITM-404", Quantity: dec("1"), Rate: dec("1")}},
		Currency:   "USD",
	}
	_, err := CalculateBundleLandedCost(bundle, map[string]*models.Item{})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("err = %v, want ErrorRecordNotFound", err)
	}
}
