package workflow

import (
	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/sirupsen/logrus"
)

const sourceTypeOpening = "OriginalOpening"

// ProcessOpeningWorkflow releases raw material into production. The opening
// posts an AUTO-OPEN-{id} voucher moving value from raw-material expense to
// finished-goods inventory at the weighted-average landed cost of every
// purchase matching the opening's exact combination. Finished-goods-origin
// openings also append a negative production entry for the item.
//
// Opening more than is available is allowed; the result is negative raw stock
// and a warning.
func ProcessOpeningWorkflow(st *store.Store, logger *logrus.Logger, opening *models.OriginalOpening) ([]string, error) {
	state := st.State()

	if err := validateOpening(state, opening); err != nil {
		return nil, err
	}
	if opening.ID == "" {
		opening.ID = models.NextEntityID("OPN", existingIDs(state.OriginalOpenings))
	}

	// Units are kg for bulk raw stock; finished-goods-origin openings convert
	// through the item's packing size.
	if opening.ItemID != "" {
		item := state.Items[opening.ItemID]
		opening.TotalKg = item.ToKg(opening.QuantityUnits)
	} else {
		opening.TotalKg = opening.QuantityUnits
	}

	warnings := []string{}
	avgCost := combinationAvgCostPerKg(state, opening.Combination)
	if avgCost.IsZero() {
		warnings = append(warnings, "no purchases found for combination; opening posted at zero cost")
	}

	commands := []store.Command{store.Add(store.CollectionOriginalOpenings, opening)}

	openedValue := opening.TotalKg.Mul(avgCost)
	if openedValue.IsPositive() {
		voucherID := models.VoucherIDOpening(opening.ID)
		debit, credit := entryPair(voucherID, "opening", opening.ID, sourceTypeOpening, opening.Date,
			models.AccountCodeFinishedGoodsInventory, models.AccountCodeRawMaterialExpense, openedValue,
			"Opening "+opening.ID)
		commands = append(commands,
			store.Add(store.CollectionJournalEntries, debit),
			store.Add(store.CollectionJournalEntries, credit))
	}

	if opening.ItemID != "" {
		commands = append(commands, store.Add(store.CollectionProductions, &models.Production{
			ID:          models.ProductionOpeningID(opening.ID),
			Date:        opening.Date,
			ItemID:      opening.ItemID,
			Quantity:    opening.QuantityUnits.Neg(),
			Description: "Opening " + opening.ID,
		}))
	}

	available := AvailableRawStock(state, opening.Combination)
	if available.Sub(opening.TotalKg).IsNegative() {
		warnings = append(warnings, "opening exceeds available raw stock for combination; stock goes negative")
	}

	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "openingWorkflow.go", "ProcessOpeningWorkflow", "Dispatch", opening.ID, err)
		return nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "openingWorkflow.go", "ProcessOpeningWorkflow", w)
	}
	return warnings, nil
}

func validateOpening(state *store.State, opening *models.OriginalOpening) error {
	comb := opening.Combination
	if comb.SupplierID == "" {
		return utils.NewValidationError("combination", "supplier is required")
	}
	if _, ok := state.Suppliers[comb.SupplierID]; !ok {
		return utils.NewValidationError("combination", "supplier not found")
	}
	if comb.SubSupplierID != "" {
		if _, ok := state.SubSuppliers[comb.SubSupplierID]; !ok {
			return utils.NewValidationError("combination", "sub-supplier not found")
		}
	}
	if comb.TypeID == "" {
		return utils.NewValidationError("combination", "type is required")
	}
	if _, ok := state.OriginalTypes[comb.TypeID]; !ok {
		return utils.NewValidationError("combination", "type not found")
	}
	if comb.ProductID != "" {
		if _, ok := state.Products[comb.ProductID]; !ok {
			return utils.NewValidationError("combination", "product not found")
		}
	}
	if !opening.QuantityUnits.IsPositive() {
		return utils.NewValidationError("quantity_units", "quantity must be positive")
	}
	if opening.ItemID != "" {
		if _, ok := state.Items[opening.ItemID]; !ok {
			return utils.NewValidationError("item_id", "item not found")
		}
	}
	return nil
}
