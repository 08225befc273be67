package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var plPrinter = message.NewPrinter(language.Polish)

// FormatCurrency renders an amount the way the dashboard shows money:
// space-grouped thousands, a decimal comma and always two decimals.
func FormatCurrency(amount float64) string {
	formatted := plPrinter.Sprintf("%v", number.Decimal(amount, number.Scale(2)))
	// CLDR groups Polish digits with NBSP; the dashboard wants a plain space.
	return strings.ReplaceAll(formatted, " ", " ")
}
