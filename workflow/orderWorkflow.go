package workflow

import (
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CreateOrderWorkflow saves a new ongoing order in Active state with an
// OO{seq}_{dd}_{mm}_{yy} id.
func CreateOrderWorkflow(st *store.Store, logger *logrus.Logger, order *models.OngoingOrder) error {
	state := st.State()

	if order.CustomerID == "" {
		return utils.NewValidationError("customer_id", "customer is required")
	}
	if _, ok := state.Customers[order.CustomerID]; !ok {
		return utils.NewValidationError("customer_id", "customer not found")
	}
	if len(order.Lines) == 0 {
		return utils.NewValidationError("lines", "at least one line is required")
	}
	for _, line := range order.Lines {
		if _, ok := state.Items[line.ItemID]; !ok {
			return utils.NewValidationError("lines", "item "+line.ItemID+" not found")
		}
		if !line.OrderedQty.IsPositive() {
			return utils.NewValidationError("lines", "ordered quantity must be positive")
		}
	}

	if order.ID == "" {
		order.ID = models.DocumentID("OO", st.NextSequence("order"), order.Date)
	}
	order.Status = models.OrderStatusActive
	order.CreatedAt = time.Now().UTC()

	if err := st.Dispatch(store.Add(store.CollectionOngoingOrders, order)); err != nil {
		config.LogError(logger, "orderWorkflow.go", "CreateOrderWorkflow", "Dispatch", order.ID, err)
		return err
	}
	return nil
}

// ShipmentLine is a quantity shipped against one order line.
type ShipmentLine struct {
	ItemID   string          `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// ShipOrderWorkflow converts shipped quantity into an Unposted sales invoice
// and advances the order's shipped counters and derived status, as one batch.
// A nil shipment list ships everything remaining. Shipping more than the
// remaining quantity on a line is a validation error; order state is the one
// place quantity is hard-bounded.
func ShipOrderWorkflow(st *store.Store, logger *logrus.Logger, orderID string, shipments []ShipmentLine) (*models.SalesInvoice, []string, error) {
	state := st.State()
	order, ok := state.OngoingOrders[orderID]
	if !ok {
		return nil, nil, utils.ErrorRecordNotFound
	}
	switch order.Status {
	case models.OrderStatusCancelled:
		return nil, nil, utils.NewValidationError("status", "order is cancelled")
	case models.OrderStatusCompleted:
		return nil, nil, utils.NewValidationError("status", "order is fully shipped")
	}

	if shipments == nil {
		for _, line := range order.Lines {
			if line.Remaining().IsPositive() {
				shipments = append(shipments, ShipmentLine{ItemID: line.ItemID, Quantity: line.Remaining()})
			}
		}
	}
	if len(shipments) == 0 {
		return nil, nil, utils.NewValidationError("shipments", "nothing to ship")
	}

	updated := *order
	updated.Lines = append([]models.OrderLine(nil), order.Lines...)
	invoiceLines := make([]models.InvoiceLine, 0, len(shipments))
	now := time.Now().UTC()

	for _, shipment := range shipments {
		if !shipment.Quantity.IsPositive() {
			return nil, nil, utils.NewValidationError("shipments", "shipment quantity must be positive")
		}
		idx := -1
		for i, line := range updated.Lines {
			if line.ItemID == shipment.ItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, nil, utils.NewValidationError("shipments", "item "+shipment.ItemID+" is not on the order")
		}
		if shipment.Quantity.GreaterThan(updated.Lines[idx].Remaining()) {
			return nil, nil, utils.NewValidationError("shipments", "shipment exceeds remaining quantity for item "+shipment.ItemID)
		}
		updated.Lines[idx].ShippedQty = updated.Lines[idx].ShippedQty.Add(shipment.Quantity)
		invoiceLines = append(invoiceLines, models.InvoiceLine{
			ItemID:         shipment.ItemID,
			Quantity:       shipment.Quantity,
			Rate:           updated.Lines[idx].Rate,
			Currency:       models.BaseCurrency,
			ConversionRate: decimal.NewFromInt(1),
		})
	}
	updated.Status = updated.DeriveStatus()

	invoice := &models.SalesInvoice{
		ID:         models.DocumentID("SI", st.NextSequence("invoice"), now),
		Date:       now,
		CustomerID: order.CustomerID,
		Lines:      invoiceLines,
		Status:     models.InvoiceStatusUnposted,
		OrderID:    order.ID,
		CreatedAt:  now,
	}

	totalPackages := decimal.Zero
	totalKg := decimal.Zero
	warnings := []string{}
	for _, line := range invoice.Lines {
		item := state.Items[line.ItemID]
		totalPackages = totalPackages.Add(line.Quantity)
		totalKg = totalKg.Add(item.ToKg(line.Quantity))
		available, err := AvailableItemStock(state, line.ItemID)
		if err != nil {
			return nil, nil, err
		}
		if available.LessThan(line.Quantity) {
			warnings = append(warnings, "item "+line.ItemID+" stock "+available.String()+
				" is below shipped quantity "+line.Quantity.String())
		}
	}
	invoice.TotalPackages = totalPackages
	invoice.TotalKg = totalKg

	err := st.Dispatch(store.Batch(
		store.Update(store.CollectionOngoingOrders, &updated),
		store.Add(store.CollectionSalesInvoices, invoice),
	))
	if err != nil {
		config.LogError(logger, "orderWorkflow.go", "ShipOrderWorkflow", "Dispatch", orderID, err)
		return nil, nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "orderWorkflow.go", "ShipOrderWorkflow", w)
	}
	return invoice, warnings, nil
}

// CancelOrderWorkflow marks an order Cancelled. Terminal; already shipped
// invoices are untouched.
func CancelOrderWorkflow(st *store.Store, logger *logrus.Logger, orderID string) error {
	state := st.State()
	order, ok := state.OngoingOrders[orderID]
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if order.Status == models.OrderStatusCompleted {
		return utils.NewValidationError("status", "order is fully shipped")
	}
	updated := *order
	updated.Status = models.OrderStatusCancelled
	if err := st.Dispatch(store.Update(store.CollectionOngoingOrders, &updated)); err != nil {
		config.LogError(logger, "orderWorkflow.go", "CancelOrderWorkflow", "Dispatch", orderID, err)
		return err
	}
	return nil
}
