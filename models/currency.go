package models

import "github.com/shopspring/decimal"

const BaseCurrency = "USD"

// DefaultCurrencyRates seeds the conversion-rate field on new transactions.
// The rate captured on a transaction is a point-in-time snapshot; editing
// these defaults later never changes the value of historical journal entries.
var DefaultCurrencyRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"AED": decimal.NewFromFloat(0.2725),
	"GBP": decimal.NewFromFloat(1.34),
	"EUR": decimal.NewFromFloat(1.17),
	"AUD": decimal.NewFromFloat(0.66),
}

// ToUSD converts a foreign-currency amount using the conversion rate captured
// on the transaction at entry time.
func ToUSD(amount, conversionRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(conversionRate)
}

// OriginalAmount preserves the pre-conversion foreign-currency value on a
// journal entry for audit.
type OriginalAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}
