// README: Currency code to display symbol resolution.
package plan

import "unicode/utf8"

// currencySymbols covers the codes offered by the intake form.
var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// SupportedCurrencies lists the codes the intake form accepts, in form order.
var SupportedCurrencies = []string{"INR", "USD", "EUR", "GBP", "JPY", "AUD", "CAD"}

// ResolveSymbol maps a currency code to a display symbol. Total and
// deterministic: known codes use the fixed table, a single-character code is
// used verbatim, anything else becomes the code plus a separating space.
func ResolveSymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	if utf8.RuneCountInString(code) == 1 {
		return code
	}
	return code + " "
}

// SupportedCurrency reports whether the intake form offers the code.
func SupportedCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}
