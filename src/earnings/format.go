package earnings

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a currency amount with precision picked by magnitude,
// from 8 fraction digits for dust down to none above 100.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0.00"
	}
	decimals := amountDecimals(math.Abs(amount))
	minDecimals := decimals
	if minDecimals > 2 {
		minDecimals = 2
	}
	return printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(minDecimals),
		number.MaxFractionDigits(decimals)))
}

func amountDecimals(abs float64) int {
	switch {
	case abs == 0:
		return 2
	case abs < 0.0001:
		return 8
	case abs < 0.01:
		return 6
	case abs < 1:
		return 4
	case abs < 100:
		return 2
	}
	return 0
}

// FormatDuration renders a number of days as "5 hours", "12 days" or
// "2 months 3 days". Unreachable durations render as "-".
func FormatDuration(days float64) string {
	if math.IsNaN(days) || math.IsInf(days, 0) || days < 0 {
		return "-"
	}
	if days < 1 {
		return plural(int(math.Ceil(days*24)), "hour")
	}
	if days < 30 {
		return plural(int(math.Ceil(days)), "day")
	}
	months := int(math.Floor(days / 30))
	rest := int(math.Ceil(math.Mod(days, 30)))
	if rest > 0 {
		return plural(months, "month") + " " + plural(rest, "day")
	}
	return plural(months, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
