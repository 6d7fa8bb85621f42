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

const sourceTypeTransfer = "BaleToRawTransfer"

// BaleToRawInput converts finished goods back into raw material (re-baling).
type BaleToRawInput struct {
	ItemID     string          `json:"item_id" binding:"required"`
	SupplierID string          `json:"supplier_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
}

// ProcessBaleToRawWorkflow books a bale-to-raw transfer as one batch:
//   - a synthetic original type ("AUTO-…") so the raw side has a combination
//     to land on; it is removed again when the transfer is deleted,
//   - a raw purchase carrying the transferred kg at the item's average
//     production price,
//   - a negative production entry consuming the finished goods,
//   - a JV-{id} voucher moving value from raw-material expense to
//     finished-goods inventory.
func ProcessBaleToRawWorkflow(st *store.Store, logger *logrus.Logger, input BaleToRawInput) (*models.Purchase, []string, error) {
	state := st.State()

	item, ok := state.Items[input.ItemID]
	if !ok {
		return nil, nil, utils.NewValidationError("item_id", "item not found")
	}
	if _, ok := state.Suppliers[input.SupplierID]; !ok {
		return nil, nil, utils.NewValidationError("supplier_id", "supplier not found")
	}
	if !input.Quantity.IsPositive() {
		return nil, nil, utils.NewValidationError("quantity", "quantity must be positive")
	}

	transferID := models.NextEntityID("TRF", existingIDs(state.Purchases))
	syntheticType := &models.OriginalType{
		ID:        "AUTO-" + transferID,
		Name:      item.Name + " (bale to raw)",
		Synthetic: true,
	}

	transferKg := item.ToKg(input.Quantity)
	costPerKg := item.AvgProductionPrice
	warnings := []string{}
	if costPerKg.IsZero() {
		warnings = append(warnings, "item "+item.ID+" has no average production price; transfer valued at zero")
	}

	purchase := &models.Purchase{
		ID:         transferID,
		Date:       input.Date,
		SupplierID: input.SupplierID,
		Lines: []models.PurchaseLine{{
			TypeID:   syntheticType.ID,
			WeightKg: transferKg,
			Rate:     costPerKg,
		}},
		Currency:       models.BaseCurrency,
		ConversionRate: decimal.NewFromInt(1),
		BatchNumber:    "TRANSFER",
		CreatedAt:      time.Now().UTC(),
	}

	production := &models.Production{
		ID:          models.ProductionDeductID(transferID),
		Date:        input.Date,
		ItemID:      item.ID,
		Quantity:    input.Quantity.Neg(),
		Description: "Bale to raw transfer " + transferID,
	}

	commands := []store.Command{
		store.Add(store.CollectionOriginalTypes, syntheticType),
		store.Add(store.CollectionPurchases, purchase),
		store.Add(store.CollectionProductions, production),
	}

	transferValue := transferKg.Mul(costPerKg)
	if transferValue.IsPositive() {
		voucherID := models.VoucherIDPurchase(transferID)
		debit, credit := entryPair(voucherID, "transfer", transferID, sourceTypeTransfer, input.Date,
			models.AccountCodeRawMaterialExpense, models.AccountCodeFinishedGoodsInventory, transferValue,
			"Bale to raw transfer "+transferID)
		commands = append(commands,
			store.Add(store.CollectionJournalEntries, debit),
			store.Add(store.CollectionJournalEntries, credit))
	}

	available, err := AvailableItemStock(state, item.ID)
	if err != nil {
		return nil, nil, err
	}
	if available.LessThan(input.Quantity) {
		warnings = append(warnings, "transfer exceeds available item stock; stock goes negative")
	}

	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "transferWorkflow.go", "ProcessBaleToRawWorkflow", "Dispatch", transferID, err)
		return nil, nil, err
	}
	for _, w := range warnings {
		config.LogWarn(logger, "transferWorkflow.go", "ProcessBaleToRawWorkflow", w)
	}
	return purchase, warnings, nil
}
