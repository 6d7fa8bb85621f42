package workflow

import (
	"testing"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
)

func TestAvailableRawStockExactCombinationOnly(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()

	plain := aedPurchase()
	if _, err := ProcessPurchaseWorkflow(st, logger, plain); err != nil {
		t.Fatalf("plain purchase: %v", err)
	}
	viaYard := aedPurchase()
	viaYard.SubSupplierID = "SSUP-001"
	viaYard.Lines = []models.PurchaseLine{{TypeID: "TYP-001", WeightKg: dec("500"), Rate: dec("2")}}
	if _, err := ProcessPurchaseWorkflow(st, logger, viaYard); err != nil {
		t.Fatalf("sub-supplier purchase: %v", err)
	}

	state := st.State()
	noSub := models.Combination{SupplierID: "SUP-001", TypeID: "TYP-001"}
	withSub := models.Combination{SupplierID: "SUP-001", SubSupplierID: "SSUP-001", TypeID: "TYP-001"}

	if got := AvailableRawStock(state, noSub); !got.Equal(dec("1000")) {
		t.Fatalf("stock without sub-supplier = %s, want 1000", got)
	}
	if got := AvailableRawStock(state, withSub); !got.Equal(dec("500")) {
		t.Fatalf("stock with sub-supplier = %s, want 500", got)
	}
	// A key nobody purchased under.
	if got := AvailableRawStock(state, models.Combination{SupplierID: "SUP-002", TypeID: "TYP-001"}); !got.IsZero() {
		t.Fatalf("stock for unpurchased combination = %s, want 0", got)
	}
}

func TestAvailableRawStockOpeningsDeduct(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	if _, err := ProcessPurchaseWorkflow(st, logger, aedPurchase()); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	comb := models.Combination{SupplierID: "SUP-001", TypeID: "TYP-001"}
	if _, err := ProcessOpeningWorkflow(st, logger, &models.OriginalOpening{
		Date:          testDate,
		Combination:   comb,
		QuantityUnits: dec("400"),
	}); err != nil {
		t.Fatalf("opening: %v", err)
	}
	if got := AvailableRawStock(st.State(), comb); !got.Equal(dec("600")) {
		t.Fatalf("raw stock after opening = %s, want 600", got)
	}
}

func TestAvailableItemStockCountsPostedInvoicesOnly(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	if err := st.Dispatch(store.Add(store.CollectionProductions, &models.Production{
		ID: "prod-1", Date: testDate, ItemID: "ITM-001", Quantity: dec("10"),
	})); err != nil {
		t.Fatalf("seed production: %v", err)
	}

	invoice := &models.SalesInvoice{
		Date:       testDate,
		CustomerID: "CUS-001",
		Lines:      []models.InvoiceLine{{ItemID: "ITM-001", Quantity: dec("4"), Rate: dec("80")}},
	}
	if _, err := CreateSalesInvoiceWorkflow(st, logger, invoice); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	got, err := AvailableItemStock(st.State(), "ITM-001")
	if err != nil {
		t.Fatalf("AvailableItemStock: %v", err)
	}
	if !got.Equal(dec("10")) {
		t.Fatalf("stock with unposted invoice = %s, want 10", got)
	}

	if _, err := PostSalesInvoiceWorkflow(st, logger, invoice.ID); err != nil {
		t.Fatalf("post invoice: %v", err)
	}
	got, err = AvailableItemStock(st.State(), "ITM-001")
	if err != nil {
		t.Fatalf("AvailableItemStock: %v", err)
	}
	if !got.Equal(dec("6")) {
		t.Fatalf("stock after posting = %s, want 6", got)
	}
}

func TestAvailableItemStockCanGoNegative(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	invoice := &models.SalesInvoice{
		Date:       testDate,
		CustomerID: "CUS-001",
		Lines:      []models.InvoiceLine{{ItemID: "ITM-002", Quantity: dec("50"), Rate: dec("1")}},
	}
	warnings, err := CreateSalesInvoiceWorkflow(st, logger, invoice)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatalf("overselling produced no warning")
	}
	if _, err := PostSalesInvoiceWorkflow(st, logger, invoice.ID); err != nil {
		t.Fatalf("post invoice: %v", err)
	}
	got, err := AvailableItemStock(st.State(), "ITM-002")
	if err != nil {
		t.Fatalf("AvailableItemStock: %v", err)
	}
	if !got.Equal(dec("-50")) {
		t.Fatalf("stock = %s, want -50", got)
	}
}

func TestRawStockByCombinationListsEachKeyOnce(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	p := aedPurchase()
	p.Lines = append(p.Lines, models.PurchaseLine{TypeID: "TYP-001", WeightKg: dec("250"), Rate: dec("2")},
		models.PurchaseLine{TypeID: "TYP-002", WeightKg: dec("100"), Rate: dec("3")})
	if _, err := ProcessPurchaseWorkflow(st, logger, p); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	summary := RawStockByCombination(st.State())
	if len(summary) != 2 {
		t.Fatalf("summary has %d combinations, want 2", len(summary))
	}
	combA := models.Combination{SupplierID: "SUP-001", TypeID: "TYP-001"}
	if !summary[combA].Equal(dec("1250")) {
		t.Fatalf("TYP-001 stock = %s, want 1250", summary[combA])
	}
	combB := models.Combination{SupplierID: "SUP-001", TypeID: "TYP-002"}
	if !summary[combB].Equal(dec("100")) {
		t.Fatalf("TYP-002 stock = %s, want 100", summary[combB])
	}
}
