package workflow

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// PriceDirection selects which way the average prices are converted.
type PriceDirection string

const (
	// PriceUnitToKg divides per-package prices by the packing size.
	PriceUnitToKg PriceDirection = "unit-to-kg"
	// PriceKgToPackage multiplies per-kg prices by the packing size.
	PriceKgToPackage PriceDirection = "kg-to-package"
)

// ConvertItemPrices rewrites every convertible item's average prices in one
// batch and returns the ids touched. Applying the same direction twice
// silently compounds; the confirmation gate lives at the call site, not here.
func ConvertItemPrices(st *store.Store, logger *logrus.Logger, direction PriceDirection) ([]string, error) {
	state := st.State()
	commands := make([]store.Command, 0, len(state.Items))
	converted := make([]string, 0, len(state.Items))

	for _, item := range state.Items {
		if item.PackingType == models.PackingTypeKg || !item.PackingSize.IsPositive() {
			continue
		}
		updated := *item
		switch direction {
		case PriceUnitToKg:
			updated.AvgProductionPrice = item.AvgProductionPrice.Div(item.PackingSize)
			updated.AvgSalesPrice = item.AvgSalesPrice.Div(item.PackingSize)
		case PriceKgToPackage:
			updated.AvgProductionPrice = item.AvgProductionPrice.Mul(item.PackingSize)
			updated.AvgSalesPrice = item.AvgSalesPrice.Mul(item.PackingSize)
		default:
			return nil, utils.NewValidationError("direction", "unknown direction "+string(direction))
		}
		commands = append(commands, store.Update(store.CollectionItems, &updated))
		converted = append(converted, item.ID)
	}

	if len(commands) == 0 {
		return nil, nil
	}
	if err := st.Dispatch(store.Batch(commands...)); err != nil {
		config.LogError(logger, "priceTools.go", "ConvertItemPrices", "Dispatch", direction, err)
		return nil, err
	}
	return converted, nil
}

// PriceRow is one row of the bulk price import. Nil prices mean the column
// was absent and that price is left alone.
type PriceRow struct {
	ItemID             string
	AvgProductionPrice *decimal.Decimal
	AvgSalesPrice      *decimal.Decimal
}

// BulkUpdatePrices applies imported price rows. Unknown item ids are
// reported, not fatal; the batch applies whatever resolved.
func BulkUpdatePrices(st *store.Store, logger *logrus.Logger, rows []PriceRow) (int, []string, error) {
	state := st.State()
	commands := make([]store.Command, 0, len(rows))
	warnings := []string{}

	for _, row := range rows {
		item, ok := state.Items[row.ItemID]
		if !ok {
			warnings = append(warnings, "item "+row.ItemID+" not found; row skipped")
			continue
		}
		updated := *item
		if row.AvgProductionPrice != nil {
			updated.AvgProductionPrice = *row.AvgProductionPrice
		}
		if row.AvgSalesPrice != nil {
			updated.AvgSalesPrice = *row.AvgSalesPrice
		}
		commands = append(commands, store.Update(store.CollectionItems, &updated))
	}

	if len(commands) > 0 {
		if err := st.Dispatch(store.Batch(commands...)); err != nil {
			config.LogError(logger, "priceTools.go", "BulkUpdatePrices", "Dispatch", nil, err)
			return 0, nil, err
		}
	}
	for _, w := range warnings {
		config.LogWarn(logger, "priceTools.go", "BulkUpdatePrices", w)
	}
	return len(commands), warnings, nil
}

// Import columns, matched case-insensitively.
const (
	headerItemCode        = "item code"
	headerID              = "id"
	headerProductionPrice = "avg production price"
	headerSalesPrice      = "avg sales price"
)

type priceColumns struct {
	id         int
	production int
	sales      int
}

func resolvePriceColumns(header []string) (priceColumns, error) {
	cols := priceColumns{id: -1, production: -1, sales: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case headerItemCode, headerID:
			cols.id = i
		case headerProductionPrice:
			cols.production = i
		case headerSalesPrice:
			cols.sales = i
		}
	}
	if cols.id < 0 {
		return cols, utils.NewValidationError("header", "no Item Code or ID column found")
	}
	if cols.production < 0 && cols.sales < 0 {
		return cols, utils.NewValidationError("header", "no price column found")
	}
	return cols, nil
}

func rowToPriceRow(record []string, cols priceColumns) (PriceRow, error) {
	row := PriceRow{ItemID: strings.TrimSpace(record[cols.id])}
	if cols.production >= 0 && cols.production < len(record) {
		if v := strings.TrimSpace(record[cols.production]); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				return row, utils.NewValidationError("avg production price", "invalid number "+v)
			}
			row.AvgProductionPrice = &price
		}
	}
	if cols.sales >= 0 && cols.sales < len(record) {
		if v := strings.TrimSpace(record[cols.sales]); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				return row, utils.NewValidationError("avg sales price", "invalid number "+v)
			}
			row.AvgSalesPrice = &price
		}
	}
	return row, nil
}

// ParsePriceCSV reads the bulk-update CSV format.
func ParsePriceCSV(r io.Reader) ([]PriceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, utils.NewValidationError("file", "empty file")
	}
	cols, err := resolvePriceColumns(records[0])
	if err != nil {
		return nil, err
	}
	rows := make([]PriceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if cols.id >= len(record) || strings.TrimSpace(record[cols.id]) == "" {
			continue
		}
		row, err := rowToPriceRow(record, cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParsePriceXLSX reads the same columns from the first sheet of a workbook.
func ParsePriceXLSX(r io.Reader) ([]PriceRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, utils.NewValidationError("file", "workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, utils.NewValidationError("file", "empty sheet")
	}
	cols, err := resolvePriceColumns(records[0])
	if err != nil {
		return nil, err
	}
	rows := make([]PriceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if cols.id >= len(record) || strings.TrimSpace(record[cols.id]) == "" {
			continue
		}
		row, err := rowToPriceRow(record, cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
