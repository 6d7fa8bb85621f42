package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Deterministic id builders. These formats are a compatibility surface: the
// correction engine locates dependent records by reconstructing them, and data
// exported by earlier versions of the system must keep resolving.

// DocumentID builds dated document ids: SI{seq}_{dd}_{mm}_{yy},
// OO{seq}_{dd}_{mm}_{yy}, FGP{seq}_{dd}_{mm}_{yy}.
func DocumentID(prefix string, seq int, date time.Time) string {
	return fmt.Sprintf("%s%d_%02d_%02d_%02d", prefix, seq, date.Day(), int(date.Month()), date.Year()%100)
}

// NextEntityID produces {PREFIX}-{NNN} zero-padded to 3 digits, scanning the
// existing ids carrying the prefix for the current maximum.
func NextEntityID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		rest, ok := strings.CutPrefix(id, prefix+"-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}

// Voucher ids group all journal entries of one source document.
func VoucherIDPurchase(purchaseID string) string { return "JV-" + purchaseID }
func VoucherIDBundle(bundleID string) string     { return "JV-FGP-" + bundleID }
func VoucherIDSale(invoiceID string) string      { return "JV-" + invoiceID }
func VoucherIDCogs(invoiceID string) string      { return "COGS-" + invoiceID }
func VoucherIDOpening(openingID string) string   { return "AUTO-OPEN-" + openingID }

// Journal entry ids: je-d-{context}-{sourceId} for the debit side,
// je-c-{context}-{sourceId} for the credit side.
func JournalDebitID(context, sourceID string) string {
	return "je-d-" + context + "-" + sourceID
}

func JournalCreditID(context, sourceID string) string {
	return "je-c-" + context + "-" + sourceID
}

// Production ids.
func ProductionDeductID(sourceID string) string { return "prod_deduct_" + sourceID }
func ProductionBundleID(bundleID, itemID string) string {
	return "prod_fgp_" + bundleID + "_" + itemID
}
func ProductionOpeningID(openingID string) string { return "prod_open_stock_" + openingID }

// IsProductionOf reports whether a production record was derived from the
// source document. Deduction and opening ids are complete, so only exact
// equality counts; a prefix test would make TRF-100 capture the records of
// TRF-1000. Bundle productions append the item id after a "_" delimiter and
// match on that delimited prefix.
func IsProductionOf(productionID, sourceID string) bool {
	return productionID == ProductionDeductID(sourceID) ||
		productionID == ProductionOpeningID(sourceID) ||
		strings.HasPrefix(productionID, "prod_fgp_"+sourceID+"_")
}
