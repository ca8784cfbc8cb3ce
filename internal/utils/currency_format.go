package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a record does not name its currency.
const DefaultCurrency = "RM"

// FormatAmount renders an amount with two decimals prefixed by its currency code.
// Example: 1200.5 with "RM" returns "RM 1200.50".
func FormatAmount(amount decimal.Decimal, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + amount.StringFixed(2)
}
