package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestContainsToken(t *testing.T) {
	cases := []struct {
		s, token string
		want     bool
	}{
		{"Adjustment for PUR-001 from old books", "PUR-001", true},
		{"Adjustment for PUR-0011 from old books", "PUR-001", false},
		{"PUR-001", "PUR-001", true},
		{"(PUR-001)", "PUR-001", true},
		{"XPUR-001", "PUR-001", false},
		{"PUR-001 and later PUR-0012", "PUR-001", true},
		{"PUR-0011 then PUR-001.", "PUR-001", true},
		{"nothing here", "PUR-001", false},
		{"anything", "", false},
	}
	for _, c := range cases {
		if got := ContainsToken(c.s, c.token); got != c.want {
			t.Fatalf("ContainsToken(%q, %q) = %v, want %v", c.s, c.token, got, c.want)
		}
	}
}

func TestDecimalEquals(t *testing.T) {
	a := decimal.NewFromFloat(100.0005)
	b := decimal.NewFromInt(100)
	if !DecimalEquals(a, b) {
		t.Fatalf("difference within tolerance reported unequal")
	}
	if DecimalEquals(decimal.NewFromFloat(100.01), b) {
		t.Fatalf("difference above tolerance reported equal")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-03-15 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Fatalf("wrong format accepted")
	}
}

func TestMergeStringSlices(t *testing.T) {
	got := MergeStringSlices([]string{"a", "b"}, []string{"b", "c"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("merged = %v, want [a b c]", got)
	}
}
