package models

import (
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/shopspring/decimal"
)

// JournalEntry is one side of a double-entry posting. Exactly one of Debit /
// Credit is non-zero. Entries sharing a VoucherID form one transaction and
// must balance to zero net.
//
// SourceDocumentID / SourceDocumentType are the explicit foreign keys linking
// an entry to the operational document it derives from. The VoucherID naming
// convention is kept alongside them for legacy data imported before the keys
// existed.
type JournalEntry struct {
	ID                 string          `json:"id"`
	VoucherID          string          `json:"voucher_id"`
	Date               time.Time       `json:"date"`
	AccountCode        AccountCode     `json:"account_code"`
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
	Description        string          `json:"description"`
	EntityID           string          `json:"entity_id,omitempty"`
	EntityType         EntityType      `json:"entity_type,omitempty"`
	OriginalAmount     *OriginalAmount `json:"original_amount,omitempty"`
	SourceDocumentID   string          `json:"source_document_id,omitempty"`
	SourceDocumentType string          `json:"source_document_type,omitempty"`
}

func (j *JournalEntry) GetId() string { return j.ID }

// VoucherBalance returns total debits minus total credits over the entries.
func VoucherBalance(entries []*JournalEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Debit).Sub(e.Credit)
	}
	return balance
}

// VoucherBalances reports whether the entries net to zero within
// utils.BalanceTolerance.
func VoucherBalances(entries []*JournalEntry) bool {
	return utils.DecimalEquals(VoucherBalance(entries), decimal.Zero)
}

// GroupByVoucher buckets entries by VoucherID preserving no particular order.
func GroupByVoucher(entries []*JournalEntry) map[string][]*JournalEntry {
	groups := make(map[string][]*JournalEntry)
	for _, e := range entries {
		groups[e.VoucherID] = append(groups[e.VoucherID], e)
	}
	return groups
}
