package hashpower

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

var powerPattern = regexp.MustCompile(`^\s*([\d.,]+)\s*([A-Za-z]+?)[hH]?\s*$`)

// Parse reads strings like "11.322 Eh/s", "100 th" or "2,5EH". Either ',' or
// '.' may be the decimal separator but only one separator is accepted.
func Parse(s string) (model.HashPower, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/s"), "/S")
	m := powerPattern.FindStringSubmatch(s)
	if m == nil {
		return model.HashPower{}, false
	}

	num := strings.Replace(m[1], ",", ".", 1)
	if strings.Count(num, ".") > 1 {
		return model.HashPower{}, false
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return model.HashPower{}, false
	}

	unit, ok := parseUnitPrefix(m[2])
	if !ok {
		return model.HashPower{}, false
	}
	return model.HashPower{Value: value, Unit: unit}, true
}

// parseUnitPrefix takes the unit letters with any trailing 'h' stripped.
func parseUnitPrefix(prefix string) (model.Unit, bool) {
	if strings.EqualFold(prefix, "h") {
		return model.UnitH, true
	}
	return model.ParseUnit(prefix + "h")
}
