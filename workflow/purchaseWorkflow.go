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

const sourceTypePurchase = "Purchase"

// ProcessPurchaseWorkflow finalizes a raw-material purchase: validates it,
// prices it, and dispatches the purchase together with its journal entries as
// one batch. The voucher JV-{id} carries the item-value pair plus one pair per
// present cost charge, all balancing as a whole.
func ProcessPurchaseWorkflow(st *store.Store, logger *logrus.Logger, purchase *models.Purchase) (*LandedCost, error) {
	state := st.State()

	if err := validatePurchase(state, purchase); err != nil {
		return nil, err
	}
	if purchase.ID == "" {
		purchase.ID = models.NextEntityID("PUR", existingIDs(state.Purchases))
	}
	if purchase.ConversionRate.IsZero() {
		if rate, ok := models.DefaultCurrencyRates[purchase.Currency]; ok {
			purchase.ConversionRate = rate
		}
	}
	purchase.CreatedAt = time.Now().UTC()

	lc, err := CalculateLandedCost(purchase)
	if err != nil {
		config.LogError(logger, "purchaseWorkflow.go", "ProcessPurchaseWorkflow", "CalculateLandedCost", purchase.ID, err)
		return nil, err
	}

	entries := buildPurchaseEntries(purchase, lc)
	if !models.VoucherBalances(entries) {
		config.LogError(logger, "purchaseWorkflow.go", "ProcessPurchaseWorkflow", "VoucherBalance", purchase.ID, utils.ErrorUnbalanced)
		return nil, utils.ErrorUnbalanced
	}

	commands := []store.Command{store.Add(store.CollectionPurchases, purchase)}
	for _, e := range entries {
		commands = append(commands, store.Add(store.CollectionJournalEntries, e))
	}
	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "purchaseWorkflow.go", "ProcessPurchaseWorkflow", "Dispatch", purchase.ID, err)
		return nil, err
	}
	return lc, nil
}

// buildPurchaseEntries derives the JV-{id} voucher. The payable credit is
// tagged with the supplier entity; cost charges with their agent.
func buildPurchaseEntries(purchase *models.Purchase, lc *LandedCost) []*models.JournalEntry {
	voucherID := models.VoucherIDPurchase(purchase.ID)
	description := "Purchase " + purchase.ID + " raw material"

	debit, credit := entryPair(voucherID, "purchase", purchase.ID, sourceTypePurchase, purchase.Date,
		models.AccountCodeRawMaterialExpense, models.AccountCodeAccountsPayable, lc.ItemValueUSD, description)
	credit.EntityID = purchase.SupplierID
	credit.EntityType = models.EntityTypeSupplier
	if purchase.Currency != models.BaseCurrency {
		credit.OriginalAmount = &models.OriginalAmount{Amount: lc.ItemValueFC, Currency: purchase.Currency}
	}

	entries := []*models.JournalEntry{debit, credit}
	entries = append(entries, chargeEntries(voucherID, "freight", purchase.ID, sourceTypePurchase, purchase.Date, purchase.Freight, "Freight on "+purchase.ID)...)
	entries = append(entries, chargeEntries(voucherID, "clearing", purchase.ID, sourceTypePurchase, purchase.Date, purchase.Clearing, "Clearing on "+purchase.ID)...)
	entries = append(entries, chargeEntries(voucherID, "commission", purchase.ID, sourceTypePurchase, purchase.Date, purchase.Commission, "Commission on "+purchase.ID)...)
	return entries
}

func validatePurchase(state *store.State, purchase *models.Purchase) error {
	if purchase.SupplierID == "" {
		return utils.NewValidationError("supplier_id", "supplier is required")
	}
	if _, ok := state.Suppliers[purchase.SupplierID]; !ok {
		return utils.NewValidationError("supplier_id", "supplier not found")
	}
	if purchase.SubSupplierID != "" {
		if _, ok := state.SubSuppliers[purchase.SubSupplierID]; !ok {
			return utils.NewValidationError("sub_supplier_id", "sub-supplier not found")
		}
	}
	if purchase.ProductID != "" {
		if _, ok := state.Products[purchase.ProductID]; !ok {
			return utils.NewValidationError("product_id", "product not found")
		}
	}
	if len(purchase.Lines) == 0 {
		return utils.NewValidationError("lines", "at least one line is required")
	}
	for _, line := range purchase.Lines {
		if _, ok := state.OriginalTypes[line.TypeID]; !ok {
			return utils.NewValidationError("lines", "type "+line.TypeID+" not found")
		}
		if !line.WeightKg.IsPositive() {
			return utils.NewValidationError("lines", "line weight must be positive")
		}
		if !line.Rate.IsPositive() {
			return utils.NewValidationError("lines", "line rate must be positive")
		}
	}
	if purchase.Currency == "" {
		return utils.NewValidationError("currency", "currency is required")
	}
	if purchase.ConversionRate.IsNegative() {
		return utils.NewValidationError("conversion_rate", "conversion rate must not be negative")
	}
	if purchase.ConversionRate.IsZero() {
		if _, ok := models.DefaultCurrencyRates[purchase.Currency]; !ok {
			return utils.NewValidationError("conversion_rate", "conversion rate is required for currency "+purchase.Currency)
		}
	}
	return nil
}

// CorrectPurchaseRate is the rate corrector tool: the actual supplier invoice
// total (in the purchase currency) replaces the recorded one by scaling every
// line rate, and the dependent AP / expense journal lines are rewritten in
// place. Missing journal lines are a warning, not an error; legacy data
// predates the naming convention.
func CorrectPurchaseRate(st *store.Store, logger *logrus.Logger, purchaseID string, correctedTotalFC decimal.Decimal) (*LandedCost, []string, error) {
	state := st.State()
	purchase, ok := state.Purchases[purchaseID]
	if !ok {
		return nil, nil, utils.ErrorRecordNotFound
	}
	if !correctedTotalFC.IsPositive() {
		return nil, nil, utils.NewValidationError("corrected_total", "corrected total must be positive")
	}
	oldTotalFC := purchase.ItemValueFC()
	if oldTotalFC.IsZero() {
		return nil, nil, utils.ErrorZeroWeight
	}
	factor := correctedTotalFC.Div(oldTotalFC)

	updated := *purchase
	updated.Lines = make([]models.PurchaseLine, len(purchase.Lines))
	for i, line := range purchase.Lines {
		line.Rate = line.Rate.Mul(factor)
		updated.Lines[i] = line
	}

	lc, err := CalculateLandedCost(&updated)
	if err != nil {
		return nil, nil, err
	}

	commands := []store.Command{store.Update(store.CollectionPurchases, &updated)}
	warnings := []string{}

	debitID := models.JournalDebitID("purchase", purchaseID)
	creditID := models.JournalCreditID("purchase", purchaseID)
	if entry, ok := state.JournalEntries[debitID]; ok {
		e := *entry
		e.Debit = lc.ItemValueUSD
		commands = append(commands, store.Update(store.CollectionJournalEntries, &e))
	} else {
		warnings = append(warnings, "journal entry "+debitID+" not found; expense line not corrected")
	}
	if entry, ok := state.JournalEntries[creditID]; ok {
		e := *entry
		e.Credit = lc.ItemValueUSD
		if e.OriginalAmount != nil {
			e.OriginalAmount = &models.OriginalAmount{Amount: lc.ItemValueFC, Currency: e.OriginalAmount.Currency}
		}
		commands = append(commands, store.Update(store.CollectionJournalEntries, &e))
	} else {
		warnings = append(warnings, "journal entry "+creditID+" not found; payable line not corrected")
	}

	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "purchaseWorkflow.go", "CorrectPurchaseRate", "Dispatch", purchaseID, err)
		return nil, nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "purchaseWorkflow.go", "CorrectPurchaseRate", w)
	}
	return lc, warnings, nil
}

// DeletePurchasesInRange bulk-deletes purchases dated within [from, to],
// cascading each through the correction engine.
func DeletePurchasesInRange(st *store.Store, logger *logrus.Logger, from, to time.Time) ([]*CorrectionReport, error) {
	state := st.State()
	ids := make([]string, 0)
	for id, p := range state.Purchases {
		if utils.SameOrAfter(p.Date, from) && utils.SameOrBefore(p.Date, to) {
			ids = append(ids, id)
		}
	}
	reports := make([]*CorrectionReport, 0, len(ids))
	for _, id := range ids {
		report, err := DeleteWithCascade(st, logger, store.CollectionPurchases, id)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func existingIDs[T store.Entity](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
