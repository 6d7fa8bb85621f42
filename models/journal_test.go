package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestVoucherBalancesWithinTolerance(t *testing.T) {
	entries := []*JournalEntry{
		{ID: "d", VoucherID: "JV-1", Debit: decimal.NewFromFloat(100.0005)},
		{ID: "c", VoucherID: "JV-1", Credit: decimal.NewFromInt(100)},
	}
	// 0.0005 off is inside the 0.001 tolerance.
	if !VoucherBalances(entries) {
		t.Fatalf("rounding residue flagged as unbalanced")
	}

	entries[0].Debit = decimal.NewFromFloat(100.01)
	if VoucherBalances(entries) {
		t.Fatalf("0.01 difference accepted as balanced")
	}
}

func TestGroupByVoucher(t *testing.T) {
	entries := []*JournalEntry{
		{ID: "a", VoucherID: "JV-1"},
		{ID: "b", VoucherID: "JV-2"},
		{ID: "c", VoucherID: "JV-1"},
	}
	groups := GroupByVoucher(entries)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups["JV-1"]) != 2 || len(groups["JV-2"]) != 1 {
		t.Fatalf("group sizes wrong: %d and %d", len(groups["JV-1"]), len(groups["JV-2"]))
	}
}
