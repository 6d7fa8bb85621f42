package workflow

import (
	"strings"
	"testing"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
)

func newTestBundle() *models.BundlePurchase {
	return &models.BundlePurchase{
		Date:           testDate,
		SupplierID:     "SUP-001",
		Lines:          []models.BundleLine{{ItemID: "ITM-001", Quantity: dec("10"), Rate: dec("50")}},
		Currency:       "USD",
		ConversionRate: dec("1"),
	}
}

func TestProcessBundlePurchaseWorkflow(t *testing.T) {
	st := newTestStore(t)
	bundle := newTestBundle()

	lc, err := ProcessBundlePurchaseWorkflow(st, testLogger(), bundle)
	if err != nil {
		t.Fatalf("ProcessBundlePurchaseWorkflow: %v", err)
	}
	if !strings.HasPrefix(bundle.ID, "FGP1_") {
		t.Fatalf("bundle id = %q, want FGP1_ prefix", bundle.ID)
	}
	if !lc.TotalKg.Equal(dec("1000")) || !lc.CostPerKg.Equal(dec("0.5")) {
		t.Fatalf("landed cost = %s kg at %s/kg, want 1000 at 0.5", lc.TotalKg, lc.CostPerKg)
	}

	state := st.State()
	production, ok := state.Productions[models.ProductionBundleID(bundle.ID, "ITM-001")]
	if !ok {
		t.Fatalf("bundle production missing")
	}
	if !production.Quantity.Equal(dec("10")) {
		t.Fatalf("production quantity = %s, want 10", production.Quantity)
	}
	// Bales consume serial numbers 1..10.
	if production.StartBale != 1 || production.EndBale != 10 {
		t.Fatalf("bale range = [%d, %d], want [1, 10]", production.StartBale, production.EndBale)
	}
	if state.Items["ITM-001"].NextBaleNumber != 11 {
		t.Fatalf("next bale number = %d, want 11", state.Items["ITM-001"].NextBaleNumber)
	}

	entries := voucherEntries(state, models.VoucherIDBundle(bundle.ID))
	if len(entries) != 2 || !models.VoucherBalances(entries) {
		t.Fatalf("bundle voucher: %d entries, balanced=%v", len(entries), models.VoucherBalances(entries))
	}
	debit := state.JournalEntries[models.JournalDebitID("fgp", bundle.ID)]
	if debit.AccountCode != models.AccountCodeBundlePurchaseExpense {
		t.Fatalf("bundle debit account = %s, want %s", debit.AccountCode, models.AccountCodeBundlePurchaseExpense)
	}
	if !debit.Debit.Equal(dec("500")) {
		t.Fatalf("bundle debit = %s, want 500", debit.Debit)
	}

	available, err := AvailableItemStock(state, "ITM-001")
	if err != nil {
		t.Fatalf("AvailableItemStock: %v", err)
	}
	if !available.Equal(dec("10")) {
		t.Fatalf("item stock after bundle = %s, want 10", available)
	}
}

func TestProcessBundlePurchaseBaleNumbersContinue(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	if _, err := ProcessBundlePurchaseWorkflow(st, logger, newTestBundle()); err != nil {
		t.Fatalf("first bundle: %v", err)
	}
	second := newTestBundle()
	if _, err := ProcessBundlePurchaseWorkflow(st, logger, second); err != nil {
		t.Fatalf("second bundle: %v", err)
	}

	production := st.State().Productions[models.ProductionBundleID(second.ID, "ITM-001")]
	if production.StartBale != 11 || production.EndBale != 20 {
		t.Fatalf("second bale range = [%d, %d], want [11, 20]", production.StartBale, production.EndBale)
	}
}

func TestProcessBundlePurchaseForeignCurrencyTagsPayable(t *testing.T) {
	st := newTestStore(t)
	bundle := newTestBundle()
	bundle.Currency = "AED"
	bundle.ConversionRate = dec("0.2725")

	if _, err := ProcessBundlePurchaseWorkflow(st, testLogger(), bundle); err != nil {
		t.Fatalf("ProcessBundlePurchaseWorkflow: %v", err)
	}
	credit := st.State().JournalEntries[models.JournalCreditID("fgp", bundle.ID)]
	if credit.EntityID != "SUP-001" || credit.EntityType != models.EntityTypeSupplier {
		t.Fatalf("payable entity = %s/%s, want SUP-001/Supplier", credit.EntityID, credit.EntityType)
	}
	if credit.OriginalAmount == nil || !credit.OriginalAmount.Amount.Equal(dec("500")) || credit.OriginalAmount.Currency != "AED" {
		t.Fatalf("original amount = %+v, want 500 AED", credit.OriginalAmount)
	}
	if !credit.Credit.Equal(dec("136.25")) {
		t.Fatalf("payable credit = %s, want 136.25", credit.Credit)
	}
}

func TestProcessBundlePurchaseUnknownItem(t *testing.T) {
	st := newTestStore(t)
	bundle := newTestBundle()
	bundle.Lines[0].ItemID = "ITM-404"
	if _, err := ProcessBundlePurchaseWorkflow(st, testLogger(), bundle); !utils.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
