package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum absolute difference between total debits and
// total credits of a voucher that is still treated as balanced.
var BalanceTolerance = decimal.NewFromFloat(0.001)

func DecimalEquals(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(BalanceTolerance)
}

// ContainsToken reports whether s contains token as a delimited word, i.e. not
// immediately surrounded by letters or digits. Used by the correction engine's
// substring fallback so that "P-001" does not match inside "P-0011".
func ContainsToken(s, token string) bool {
	if token == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(s[start:], token)
		if idx < 0 {
			return false
		}
		idx += start
		before := idx - 1
		after := idx + len(token)
		leftOk := before < 0 || !isAlnum(s[before])
		rightOk := after >= len(s) || !isAlnum(s[after])
		if leftOk && rightOk {
			return true
		}
		start = idx + 1
	}
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func MergeStringSlices(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func SameOrAfter(t, from time.Time) bool {
	return !t.Before(from)
}

func SameOrBefore(t, to time.Time) bool {
	return !t.After(to)
}
