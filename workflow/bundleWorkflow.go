package workflow

import (
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/sirupsen/logrus"
)

const sourceTypeBundlePurchase = "BundlePurchase"

// ProcessBundlePurchaseWorkflow finalizes a finished-goods purchase. Each line
// spawns a Production record (the stock-increasing side); Bales items consume
// a serial range from the item's bale counter. Journal entries post under
// JV-FGP-{id} in the same shape as raw purchases, against the bundle expense
// account.
func ProcessBundlePurchaseWorkflow(st *store.Store, logger *logrus.Logger, bundle *models.BundlePurchase) (*LandedCost, error) {
	state := st.State()

	if err := validateBundle(state, bundle); err != nil {
		return nil, err
	}
	if bundle.ID == "" {
		bundle.ID = models.DocumentID("FGP", st.NextSequence("fgp"), bundle.Date)
	}
	if bundle.ConversionRate.IsZero() {
		if rate, ok := models.DefaultCurrencyRates[bundle.Currency]; ok {
			bundle.ConversionRate = rate
		}
	}
	bundle.CreatedAt = time.Now().UTC()

	lc, err := CalculateBundleLandedCost(bundle, state.Items)
	if err != nil {
		config.LogError(logger, "bundleWorkflow.go", "ProcessBundlePurchaseWorkflow", "CalculateBundleLandedCost", bundle.ID, err)
		return nil, err
	}

	productions, err := buildBundleProductions(st, state, bundle)
	if err != nil {
		return nil, err
	}

	voucherID := models.VoucherIDBundle(bundle.ID)
	description := "Bundle purchase " + bundle.ID
	debit, credit := entryPair(voucherID, "fgp", bundle.ID, sourceTypeBundlePurchase, bundle.Date,
		models.AccountCodeBundlePurchaseExpense, models.AccountCodeAccountsPayable, lc.ItemValueUSD, description)
	credit.EntityID = bundle.SupplierID
	credit.EntityType = models.EntityTypeSupplier
	if bundle.Currency != models.BaseCurrency {
		credit.OriginalAmount = &models.OriginalAmount{Amount: lc.ItemValueFC, Currency: bundle.Currency}
	}
	entries := []*models.JournalEntry{debit, credit}
	entries = append(entries, chargeEntries(voucherID, "freight", bundle.ID, sourceTypeBundlePurchase, bundle.Date, bundle.Freight, "Freight on "+bundle.ID)...)
	entries = append(entries, chargeEntries(voucherID, "clearing", bundle.ID, sourceTypeBundlePurchase, bundle.Date, bundle.Clearing, "Clearing on "+bundle.ID)...)
	entries = append(entries, chargeEntries(voucherID, "commission", bundle.ID, sourceTypeBundlePurchase, bundle.Date, bundle.Commission, "Commission on "+bundle.ID)...)

	if !models.VoucherBalances(entries) {
		return nil, utils.ErrorUnbalanced
	}

	commands := []store.Command{store.Add(store.CollectionBundlePurchases, bundle)}
	for _, p := range productions {
		commands = append(commands, store.Add(store.CollectionProductions, p))
	}
	for _, e := range entries {
		commands = append(commands, store.Add(store.CollectionJournalEntries, e))
	}
	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "bundleWorkflow.go", "ProcessBundlePurchaseWorkflow", "Dispatch", bundle.ID, err)
		return nil, err
	}
	return lc, nil
}

func buildBundleProductions(st *store.Store, state *store.State, bundle *models.BundlePurchase) ([]*models.Production, error) {
	productions := make([]*models.Production, 0, len(bundle.Lines))
	for _, line := range bundle.Lines {
		item := state.Items[line.ItemID]
		production := &models.Production{
			ID:          models.ProductionBundleID(bundle.ID, line.ItemID),
			Date:        bundle.Date,
			ItemID:      line.ItemID,
			Quantity:    line.Quantity,
			Description: "Bundle purchase " + bundle.ID,
		}
		if item.PackingType == models.PackingTypeBales {
			count := int(line.Quantity.IntPart())
			if count > 0 {
				start, end, err := st.AllocateBaleRange(item.ID, count)
				if err != nil {
					return nil, err
				}
				production.StartBale = start
				production.EndBale = end
			}
		}
		productions = append(productions, production)
	}
	return productions, nil
}

func validateBundle(state *store.State, bundle *models.BundlePurchase) error {
	if bundle.SupplierID == "" {
		return utils.NewValidationError("supplier_id", "supplier is required")
	}
	if _, ok := state.Suppliers[bundle.SupplierID]; !ok {
		return utils.NewValidationError("supplier_id", "supplier not found")
	}
	if len(bundle.Lines) == 0 {
		return utils.NewValidationError("lines", "at least one line is required")
	}
	for _, line := range bundle.Lines {
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
	if bundle.Currency == "" {
		return utils.NewValidationError("currency", "currency is required")
	}
	if bundle.ConversionRate.IsZero() {
		if _, ok := models.DefaultCurrencyRates[bundle.Currency]; !ok {
			return utils.NewValidationError("conversion_rate", "conversion rate is required for currency "+bundle.Currency)
		}
	}
	return nil
}
