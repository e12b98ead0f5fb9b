package league

import (
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

const defaultScaleFactor = 1e8

// scaleLookup maps a raw payout key to its canonical code and divisor.
type scaleLookup func(rawKey string) (code string, scale float64, ok bool)

var fallbackScales = map[string]float64{
	"SAT":         1e10,
	"BTC":         1e10,
	"ETH_SMALL":   1e10,
	"BNB_SMALL":   1e10,
	"MATIC_SMALL": 1e10,
	"TRX_SMALL":   1e10,
	"SOL_SMALL":   1e9,
	"LTC_SMALL":   1e8,
	"DOGE_SMALL":  1e4,
	"USDT_SMALL":  1e6,
}

// scaleLookups are tried in order, the first match wins.
var scaleLookups = []scaleLookup{configuredScale, fallbackScale}

func configuredScale(rawKey string) (string, float64, bool) {
	cfg, ok := CurrencyByRawKey(rawKey)
	if !ok {
		return "", 0, false
	}
	scale := cfg.ScaleFactor
	// BTC payouts are published in 1e-10 units despite the satoshi key
	if cfg.CanonicalCode == "BTC" && scale == 1e8 {
		scale = 1e10
	}
	return cfg.CanonicalCode, scale, true
}

func fallbackScale(rawKey string) (string, float64, bool) {
	scale, ok := fallbackScales[rawKey]
	if !ok {
		return "", 0, false
	}
	return fallbackCode(rawKey), scale, true
}

func fallbackCode(rawKey string) string {
	code := rawKey
	if code == "SAT" {
		code = "BTC"
	} else {
		code = strings.TrimSuffix(code, "_SMALL")
	}
	if code == "MATIC" {
		code = "POL"
	}
	return code
}

func resolveScale(rawKey string) (string, float64) {
	for _, lookup := range scaleLookups {
		if code, scale, ok := lookup(rawKey); ok {
			return code, scale
		}
	}
	return fallbackCode(rawKey), defaultScaleFactor
}

// CanonicalCode maps a raw payout key such as SAT or MATIC_SMALL to the code
// users see (BTC, POL).
func CanonicalCode(rawKey string) string {
	code, _ := resolveScale(rawKey)
	return code
}

// ScaleRewards converts a tier's raw payouts into whole-currency rewards per
// block keyed by canonical code.
func ScaleRewards(tier model.LeagueTier) map[string]float64 {
	rewards := make(map[string]float64, len(tier.Currencies))
	for _, c := range tier.Currencies {
		code, scale := resolveScale(c.Name)
		rewards[code] = c.PayoutRaw / scale
	}
	return rewards
}
