package workflow

import (
	"io"
	"testing"
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/models"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

// newTestStore seeds the master data every workflow test needs: two
// suppliers, a sub-supplier, a customer, an agent, two original types, a
// product, a Bales item (100 kg bales) and a loose-Kg item.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.NewStore()

	seed := []store.Command{
		store.Add(store.CollectionSuppliers, &models.Supplier{ID: "SUP-001", Name: "Al Noor Trading"}),
		store.Add(store.CollectionSuppliers, &models.Supplier{ID: "SUP-002", Name: "Gulf Cotton"}),
		store.Add(store.CollectionSubSuppliers, &models.SubSupplier{ID: "SSUP-001", SupplierID: "SUP-001", Name: "Al Noor Yard B"}),
		store.Add(store.CollectionCustomers, &models.Customer{ID: "CUS-001", Name: "Karachi Textiles"}),
		store.Add(store.CollectionAgents, &models.Agent{ID: "AGT-001", Name: "FastFreight"}),
		store.Add(store.CollectionOriginalTypes, &models.OriginalType{ID: "TYP-001", Name: "Cotton A"}),
		store.Add(store.CollectionOriginalTypes, &models.OriginalType{ID: "TYP-002", Name: "Cotton B"}),
		store.Add(store.CollectionProducts, &models.Product{ID: "PRD-001", Name: "White Waste"}),
		store.Add(store.CollectionItems, &models.Item{
			ID:                 "ITM-001",
			Name:               "Wiper Bale",
			PackingType:        models.PackingTypeBales,
			PackingSize:        dec("100"),
			AvgProductionPrice: dec("0.5"),
			AvgSalesPrice:      dec("0.8"),
			NextBaleNumber:     1,
		}),
		store.Add(store.CollectionItems, &models.Item{
			ID:                 "ITM-002",
			Name:               "Loose Rags",
			PackingType:        models.PackingTypeKg,
			AvgProductionPrice: dec("0.3"),
			AvgSalesPrice:      dec("0.55"),
		}),
	}
	if err := st.Dispatch(store.Batch(seed...)); err != nil {
		t.Fatalf("seed master data: %v", err)
	}
	return st
}

// aedPurchase is the reference container: 1000 kg at 2.5 AED/kg, conversion
// rate 0.2725, freight 50 USD.
func aedPurchase() *models.Purchase {
	return &models.Purchase{
		Date:           testDate,
		SupplierID:     "SUP-001",
		Lines:          []models.PurchaseLine{{TypeID: "TYP-001", WeightKg: dec("1000"), Rate: dec("2.5")}},
		Currency:       "AED",
		ConversionRate: dec("0.2725"),
		Freight: models.CostCharge{
			Amount:         dec("50"),
			Currency:       "USD",
			ConversionRate: dec("1"),
			AgentID:        "AGT-001",
		},
	}
}

func voucherEntries(state *store.State, voucherID string) []*models.JournalEntry {
	var entries []*models.JournalEntry
	for _, e := range state.JournalEntries {
		if e.VoucherID == voucherID {
			entries = append(entries, e)
		}
	}
	return entries
}
