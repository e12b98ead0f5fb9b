package league

import (
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

var currencyTable = []model.CurrencyConfig{
	{Name: "MATIC", CanonicalCode: "POL", RawKey: "MATIC_SMALL", ScaleFactor: 1e10, MinWithdraw: 300, DisplayPrecision: 6},
	{Name: "BNB", CanonicalCode: "BNB", RawKey: "BNB_SMALL", ScaleFactor: 1e10, MinWithdraw: 0.06, DisplayPrecision: 6},
	{Name: "LTC", CanonicalCode: "LTC", RawKey: "LTC_SMALL", ScaleFactor: 1e8, MinWithdraw: 5, DisplayPrecision: 6},
	{Name: "USDT", CanonicalCode: "USDT", RawKey: "USDT_SMALL", ScaleFactor: 1e6, MinWithdraw: 5, DisplayPrecision: 6},
	{Name: "ETH", CanonicalCode: "ETH", RawKey: "ETH_SMALL", ScaleFactor: 1e10, MinWithdraw: 0.014, DisplayPrecision: 6},
	{Name: "SOL", CanonicalCode: "SOL", RawKey: "SOL_SMALL", ScaleFactor: 1e9, MinWithdraw: 0.6, DisplayPrecision: 6},
	{Name: "TRX", CanonicalCode: "TRX", RawKey: "TRX_SMALL", ScaleFactor: 1e10, MinWithdraw: 300, DisplayPrecision: 6},
	{Name: "BTC", CanonicalCode: "BTC", RawKey: "SAT", ScaleFactor: 1e8, MinWithdraw: 0.00085, DisplayPrecision: 8},
	{Name: "DOGE", CanonicalCode: "DOGE", RawKey: "DOGE_SMALL", ScaleFactor: 1e4, MinWithdraw: 220, DisplayPrecision: 4},
	{Name: "RLT", CanonicalCode: "RLT", RawKey: "RLT", ScaleFactor: 1e6, MinWithdraw: 1, IsGameToken: true, DisplayPrecision: 6},
	{Name: "RST", CanonicalCode: "RST", RawKey: "RST", ScaleFactor: 1e6, MinWithdraw: 1, IsGameToken: true, DisplayPrecision: 6},
	{Name: "HMT", CanonicalCode: "HMT", RawKey: "HMT", ScaleFactor: 1e6, MinWithdraw: 1, IsGameToken: true, DisplayPrecision: 6},
	{Name: "XRP", CanonicalCode: "XRP", RawKey: "XRP_SMALL", ScaleFactor: 1e6, MinWithdraw: 40, DisplayPrecision: 6},
	{Name: "ALGO", CanonicalCode: "ALGO", RawKey: "ALGO_SMALL", ScaleFactor: 1e6, MinWithdraw: 30, DisplayPrecision: 6},
}

// Currencies returns a copy of the built-in currency table.
func Currencies() []model.CurrencyConfig {
	out := make([]model.CurrencyConfig, len(currencyTable))
	copy(out, currencyTable)
	return out
}

func CurrencyByRawKey(rawKey string) (model.CurrencyConfig, bool) {
	for _, c := range currencyTable {
		if c.RawKey == rawKey {
			return c, true
		}
	}
	return model.CurrencyConfig{}, false
}

// CurrencyByCode matches case-insensitively on name, canonical code or raw key.
func CurrencyByCode(code string) (model.CurrencyConfig, bool) {
	code = strings.ToUpper(code)
	for _, c := range currencyTable {
		if c.Name == code || c.CanonicalCode == code || c.RawKey == code {
			return c, true
		}
	}
	return model.CurrencyConfig{}, false
}

func IsGameToken(code string) bool {
	c, ok := CurrencyByCode(code)
	return ok && c.IsGameToken
}

// DefaultBlockRewards are per-block rewards used when no league is known.
func DefaultBlockRewards() map[string]float64 {
	return map[string]float64{
		"BTC":  0.0000177,
		"ETH":  0.000612,
		"SOL":  0.028,
		"DOGE": 12.08,
		"BNB":  0.00127,
		"LTC":  0.0085,
		"XRP":  0.522,
		"TRX":  10.9,
		"POL":  7.74,
		"RLT":  3.34,
		"RST":  204.4,
		"HMT":  1533,
	}
}
