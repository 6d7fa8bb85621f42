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

const sourceTypeSalesInvoice = "SalesInvoice"

// CreateSalesInvoiceWorkflow saves a new invoice in Unposted state. Totals
// are derived from the item master; overselling is a warning, never a block.
func CreateSalesInvoiceWorkflow(st *store.Store, logger *logrus.Logger, invoice *models.SalesInvoice) ([]string, error) {
	state := st.State()

	if err := validateInvoice(state, invoice); err != nil {
		return nil, err
	}
	if invoice.ID == "" {
		invoice.ID = models.DocumentID("SI", st.NextSequence("invoice"), invoice.Date)
	}
	invoice.Status = models.InvoiceStatusUnposted
	invoice.CreatedAt = time.Now().UTC()

	totalPackages := decimal.Zero
	totalKg := decimal.Zero
	warnings := []string{}
	for _, line := range invoice.Lines {
		item := state.Items[line.ItemID]
		totalPackages = totalPackages.Add(line.Quantity)
		totalKg = totalKg.Add(item.ToKg(line.Quantity))

		available, err := AvailableItemStock(state, line.ItemID)
		if err != nil {
			return nil, err
		}
		if available.LessThan(line.Quantity) {
			warnings = append(warnings, "item "+line.ItemID+" stock "+available.String()+
				" is below invoiced quantity "+line.Quantity.String())
		}
	}
	invoice.TotalPackages = totalPackages
	invoice.TotalKg = totalKg

	if err := st.Dispatch(store.Add(store.CollectionSalesInvoices, invoice)); err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "CreateSalesInvoiceWorkflow", "Dispatch", invoice.ID, err)
		return nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "invoiceWorkflow.go", "CreateSalesInvoiceWorkflow", w)
	}
	return warnings, nil
}

// PostSalesInvoiceWorkflow moves an invoice Unposted -> Posted and derives the
// revenue and cost vouchers. Sale value posts under JV-{id}; cost of goods
// under the separate COGS-{id} voucher. Direct sales cost against their
// linked purchase batch, everything else against the item's average
// production price.
func PostSalesInvoiceWorkflow(st *store.Store, logger *logrus.Logger, invoiceID string) ([]string, error) {
	state := st.State()
	invoice, ok := state.SalesInvoices[invoiceID]
	if !ok {
		return nil, utils.ErrorRecordNotFound
	}
	if invoice.Status == models.InvoiceStatusPosted {
		return nil, utils.NewValidationError("status", "invoice is already posted")
	}

	saleValue := invoice.SaleValueUSD()
	voucherID := models.VoucherIDSale(invoice.ID)
	description := "Sales invoice " + invoice.ID

	debit, credit := entryPair(voucherID, "sale", invoice.ID, sourceTypeSalesInvoice, invoice.Date,
		models.AccountCodeAccountsReceivable, models.AccountCodeRevenue, saleValue, description)
	debit.EntityID = invoice.CustomerID
	debit.EntityType = models.EntityTypeCustomer
	if fc, amount := foreignSaleValue(invoice); fc != "" {
		debit.OriginalAmount = &models.OriginalAmount{Amount: amount, Currency: fc}
	}
	entries := []*models.JournalEntry{debit, credit}

	cogs, warnings, err := costOfGoods(state, invoice)
	if err != nil {
		return nil, err
	}
	if cogs.IsPositive() {
		cogsVoucher := models.VoucherIDCogs(invoice.ID)
		cogsDebit, cogsCredit := entryPair(cogsVoucher, "cogs", invoice.ID, sourceTypeSalesInvoice, invoice.Date,
			models.AccountCodeCostOfGoodsSold, models.AccountCodeRawMaterialExpense, cogs,
			"Cost of goods "+invoice.ID)
		entries = append(entries, cogsDebit, cogsCredit)
	}

	for _, group := range models.GroupByVoucher(entries) {
		if !models.VoucherBalances(group) {
			return nil, utils.ErrorUnbalanced
		}
	}

	updated := *invoice
	updated.Status = models.InvoiceStatusPosted
	commands := []store.Command{store.Update(store.CollectionSalesInvoices, &updated)}
	for _, e := range entries {
		commands = append(commands, store.Add(store.CollectionJournalEntries, e))
	}
	for _, line := range invoice.Lines {
		available, err := AvailableItemStock(state, line.ItemID)
		if err != nil {
			return nil, err
		}
		if available.Sub(line.Quantity).IsNegative() {
			warnings = append(warnings, "posting drives item "+line.ItemID+" stock negative")
		}
	}

	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "PostSalesInvoiceWorkflow", "Dispatch", invoice.ID, err)
		return nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "invoiceWorkflow.go", "PostSalesInvoiceWorkflow", w)
	}
	return warnings, nil
}

// costOfGoods values the invoice's goods. Direct-resale invoices cost at the
// linked batch's landed cost per kg; regular invoices at each item's average
// production price per kg.
func costOfGoods(state *store.State, invoice *models.SalesInvoice) (decimal.Decimal, []string, error) {
	warnings := []string{}
	if invoice.DirectSalesDetails != nil {
		purchase, ok := state.Purchases[invoice.DirectSalesDetails.PurchaseID]
		if !ok {
			return decimal.Zero, nil, utils.NewValidationError("direct_sales_details", "linked purchase not found")
		}
		lc, err := CalculateLandedCost(purchase)
		if err != nil {
			return decimal.Zero, nil, err
		}
		soldKg := invoice.DirectSalesDetails.SoldKg
		if soldKg.IsZero() {
			soldKg = invoice.TotalKg
		}
		return soldKg.Mul(lc.CostPerKg), warnings, nil
	}

	cogs := decimal.Zero
	for _, line := range invoice.Lines {
		item := state.Items[line.ItemID]
		if item == nil {
			return decimal.Zero, nil, utils.ErrorRecordNotFound
		}
		if item.AvgProductionPrice.IsZero() {
			warnings = append(warnings, "item "+line.ItemID+" has no average production price; cost of goods understated")
		}
		cogs = cogs.Add(item.ToKg(line.Quantity).Mul(item.AvgProductionPrice))
	}
	return cogs, warnings, nil
}

// foreignSaleValue returns the shared foreign currency and its total when
// every line carries the same non-USD currency, else empty.
func foreignSaleValue(invoice *models.SalesInvoice) (string, decimal.Decimal) {
	currency := ""
	total := decimal.Zero
	for _, line := range invoice.Lines {
		if line.Currency == "" || line.Currency == models.BaseCurrency {
			return "", decimal.Zero
		}
		if currency == "" {
			currency = line.Currency
		} else if currency != line.Currency {
			return "", decimal.Zero
		}
		total = total.Add(line.Quantity.Mul(line.Rate))
	}
	return currency, total
}

func validateInvoice(state *store.State, invoice *models.SalesInvoice) error {
	if invoice.CustomerID == "" {
		return utils.NewValidationError("customer_id", "customer is required")
	}
	if _, ok := state.Customers[invoice.CustomerID]; !ok {
		return utils.NewValidationError("customer_id", "customer not found")
	}
	if len(invoice.Lines) == 0 && invoice.DirectSalesDetails == nil {
		return utils.NewValidationError("lines", "at least one line is required")
	}
	for _, line := range invoice.Lines {
		if _, ok := state.Items[line.ItemID]; !ok {
			return utils.NewValidationError("lines", "item "+line.ItemID+" not found")
		}
		if !line.Quantity.IsPositive() {
			return utils.NewValidationError("lines", "line quantity must be positive")
		}
		if !line.Rate.IsPositive() {
			return utils.NewValidationError("lines", "line rate must be positive")
		}
	}
	if invoice.DirectSalesDetails != nil {
		if _, ok := state.Purchases[invoice.DirectSalesDetails.PurchaseID]; !ok {
			return utils.NewValidationError("direct_sales_details", "linked purchase not found")
		}
	}
	return nil
}
