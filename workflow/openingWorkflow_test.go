package workflow

import (
	"testing"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
)

func TestProcessOpeningWorkflowPostsAtWeightedAverageCost(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()

	// Two USD batches on the same combination: 1000 kg at 2/kg and 1000 kg at
	// 3/kg, so the weighted average is 2.5/kg.
	for _, rate := range []string{"2", "3"} {
		p := &models.Purchase{
			Date:           testDate,
			SupplierID:     "SUP-001",
			Lines:          []models.PurchaseLine{{TypeID: "TYP-001", WeightKg: dec("1000"), Rate: dec(rate)}},
			Currency:       "USD",
			ConversionRate: dec("1"),
		}
		if _, err := ProcessPurchaseWorkflow(st, logger, p); err != nil {
			t.Fatalf("purchase at %s: %v", rate, err)
		}
	}

	opening := &models.OriginalOpening{
		Date:          testDate,
		Combination:   models.Combination{SupplierID: "SUP-001", TypeID: "TYP-001"},
		QuantityUnits: dec("400"),
	}
	warnings, err := ProcessOpeningWorkflow(st, logger, opening)
	if err != nil {
		t.Fatalf("ProcessOpeningWorkflow: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if opening.ID != "OPN-001" {
		t.Fatalf("opening id = %q, want OPN-001", opening.ID)
	}
	if !opening.TotalKg.Equal(dec("400")) {
		t.Fatalf("opening totalKg = %s, want 400", opening.TotalKg)
	}

	state := st.State()
	entries := voucherEntries(state, "AUTO-OPEN-OPN-001")
	if len(entries) != 2 {
		t.Fatalf("voucher AUTO-OPEN-OPN-001 has %d entries, want 2", len(entries))
	}
	debit := state.JournalEntries[models.JournalDebitID("opening", "OPN-001")]
	if debit.AccountCode != models.AccountCodeFinishedGoodsInventory {
		t.Fatalf("debit account = %s, want %s", debit.AccountCode, models.AccountCodeFinishedGoodsInventory)
	}
	// 400 kg at the 2.5/kg weighted average.
	if !debit.Debit.Equal(dec("1000")) {
		t.Fatalf("opening debit = %s, want 1000", debit.Debit)
	}
	if !models.VoucherBalances(entries) {
		t.Fatalf("opening voucher does not balance")
	}
}

func TestProcessOpeningWorkflowFinishedGoodsOrigin(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	if _, err := ProcessPurchaseWorkflow(st, logger, aedPurchase()); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	opening := &models.OriginalOpening{
		Date:          testDate,
		Combination:   models.Combination{SupplierID: "SUP-001", TypeID: "TYP-001"},
		QuantityUnits: dec("3"),
		ItemID:        "ITM-001",
	}
	if _, err := ProcessOpeningWorkflow(st, logger, opening); err != nil {
		t.Fatalf("ProcessOpeningWorkflow: %v", err)
	}
	// 3 bales of 100 kg.
	if !opening.TotalKg.Equal(dec("300")) {
		t.Fatalf("opening totalKg = %s, want 300", opening.TotalKg)
	}

	state := st.State()
	production, ok := state.Productions[models.ProductionOpeningID(opening.ID)]
	if !ok {
		t.Fatalf("deduction production missing")
	}
	if !production.Quantity.Equal(dec("-3")) {
		t.Fatalf("production quantity = %s, want -3", production.Quantity)
	}
	if production.ItemID != "ITM-001" {
		t.Fatalf("production item = %s, want ITM-001", production.ItemID)
	}
}

func TestProcessOpeningWorkflowNoPurchasesWarnsZeroCost(t *testing.T) {
	st := newTestStore(t)
	opening := &models.OriginalOpening{
		Date:          testDate,
		Combination:   models.Combination{SupplierID: "SUP-002", TypeID: "TYP-002"},
		QuantityUnits: dec("100"),
	}
	warnings, err := ProcessOpeningWorkflow(st, testLogger(), opening)
	if err != nil {
		t.Fatalf("ProcessOpeningWorkflow: %v", err)
	}
	// Zero cost and negative-stock warnings both apply.
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if len(voucherEntries(st.State(), "AUTO-OPEN-"+opening.ID)) != 0 {
		t.Fatalf("zero-cost opening still posted journal entries")
	}
}

func TestProcessOpeningWorkflowValidatesCombination(t *testing.T) {
	st := newTestStore(t)
	_, err := ProcessOpeningWorkflow(st, testLogger(), &models.OriginalOpening{
		Date:          testDate,
		Combination:   models.Combination{SupplierID: "SUP-001"},
		QuantityUnits: dec("10"),
	})
	if !utils.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
