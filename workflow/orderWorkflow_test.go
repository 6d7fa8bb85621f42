package workflow

import (
	"strings"
	"testing"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/sirupsen/logrus"
)

func createTestOrder(t *testing.T, st *store.Store, logger *logrus.Logger) *models.OngoingOrder {
	t.Helper()
	order := &models.OngoingOrder{
		Date:       testDate,
		CustomerID: "CUS-001",
		Lines:      []models.OrderLine{{ItemID: "ITM-001", OrderedQty: dec("10"), Rate: dec("80")}},
	}
	if err := CreateOrderWorkflow(st, logger, order); err != nil {
		t.Fatalf("CreateOrderWorkflow: %v", err)
	}
	return order
}

func TestCreateOrderWorkflow(t *testing.T) {
	st := newTestStore(t)
	order := createTestOrder(t, st, testLogger())

	if !strings.HasPrefix(order.ID, "OO1_") {
		t.Fatalf("order id = %q, want OO1_ prefix", order.ID)
	}
	if order.Status != models.OrderStatusActive {
		t.Fatalf("status = %s, want Active", order.Status)
	}
}

func TestShipOrderPartialThenComplete(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	seedItemStock(t, st, "ITM-001", "20")
	order := createTestOrder(t, st, logger)

	invoice, _, err := ShipOrderWorkflow(st, logger, order.ID, []ShipmentLine{{ItemID: "ITM-001", Quantity: dec("4")}})
	if err != nil {
		t.Fatalf("partial shipment: %v", err)
	}
	if invoice.Status != models.InvoiceStatusUnposted {
		t.Fatalf("shipment invoice status = %s, want Unposted", invoice.Status)
	}
	if invoice.OrderID != order.ID {
		t.Fatalf("invoice orderId = %q, want %q", invoice.OrderID, order.ID)
	}
	if len(invoice.Lines) != 1 || !invoice.Lines[0].Quantity.Equal(dec("4")) || !invoice.Lines[0].Rate.Equal(dec("80")) {
		t.Fatalf("invoice lines = %+v, want one line 4 @ 80", invoice.Lines)
	}
	if !invoice.TotalKg.Equal(dec("400")) {
		t.Fatalf("invoice totalKg = %s, want 400", invoice.TotalKg)
	}

	state := st.State()
	shipped := state.OngoingOrders[order.ID]
	if shipped.Status != models.OrderStatusPartiallyShipped {
		t.Fatalf("status after partial shipment = %s, want PartiallyShipped", shipped.Status)
	}
	if !shipped.Lines[0].ShippedQty.Equal(dec("4")) {
		t.Fatalf("shippedQty = %s, want 4", shipped.Lines[0].ShippedQty)
	}

	// A nil shipment list ships the remaining 6.
	invoice, _, err = ShipOrderWorkflow(st, logger, order.ID, nil)
	if err != nil {
		t.Fatalf("closing shipment: %v", err)
	}
	if !invoice.Lines[0].Quantity.Equal(dec("6")) {
		t.Fatalf("closing shipment quantity = %s, want 6", invoice.Lines[0].Quantity)
	}
	if st.State().OngoingOrders[order.ID].Status != models.OrderStatusCompleted {
		t.Fatalf("status after full shipment != Completed")
	}

	// Nothing left to ship.
	if _, _, err := ShipOrderWorkflow(st, logger, order.ID, nil); !utils.IsValidationError(err) {
		t.Fatalf("shipping a completed order: err = %v, want validation error", err)
	}
}

func TestShipOrderOverShipmentRejected(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	order := createTestOrder(t, st, logger)

	_, _, err := ShipOrderWorkflow(st, logger, order.ID, []ShipmentLine{{ItemID: "ITM-001", Quantity: dec("11")}})
	if !utils.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	// Nothing applied: shipped quantity untouched, no invoice created.
	state := st.State()
	if !state.OngoingOrders[order.ID].Lines[0].ShippedQty.IsZero() {
		t.Fatalf("shippedQty changed on rejected shipment")
	}
	if len(state.SalesInvoices) != 0 {
		t.Fatalf("invoice created on rejected shipment")
	}
}

func TestShipOrderUnknownItemRejected(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	order := createTestOrder(t, st, logger)

	_, _, err := ShipOrderWorkflow(st, logger, order.ID, []ShipmentLine{{ItemID: "ITM-002", Quantity: dec("1")}})
	if !utils.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCancelOrderBlocksShipment(t *testing.T) {
	st := newTestStore(t)
	logger := testLogger()
	order := createTestOrder(t, st, logger)

	if err := CancelOrderWorkflow(st, logger, order.ID); err != nil {
		t.Fatalf("CancelOrderWorkflow: %v", err)
	}
	if st.State().OngoingOrders[order.ID].Status != models.OrderStatusCancelled {
		t.Fatalf("order not cancelled")
	}
	if _, _, err := ShipOrderWorkflow(st, logger, order.ID, nil); !utils.IsValidationError(err) {
		t.Fatalf("shipping a cancelled order: err = %v, want validation error", err)
	}
}
