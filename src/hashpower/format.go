package hashpower

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

var printer = message.NewPrinter(language.English)

// Format renders p as "1,234.5 Th/s" with up to three fraction digits. The
// unit is never changed, call AutoScale first for a readable magnitude.
func Format(p model.HashPower) string {
	return printer.Sprintf("%v %s/s",
		number.Decimal(p.Value, number.MinFractionDigits(0), number.MaxFractionDigits(3)),
		p.Unit)
}

// FormatFromGh formats a Gh/s figure in its natural unit.
func FormatFromGh(gh float64) string {
	return Format(FromGh(gh))
}
