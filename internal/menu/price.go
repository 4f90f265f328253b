package menu

import "github.com/shopspring/decimal"

const currencySymbol = "$"

// FormatPrice renders amount with a leading dollar sign and exactly two
// fraction digits, e.g. 6 -> "$6.00". Amounts are expected to be non-negative.
func FormatPrice(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

// FormatOptionPrice renders the surcharge shown next to a modifier option.
// Free options render as an empty string.
func FormatOptionPrice(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return ""
	}
	return "+" + FormatPrice(amount)
}
