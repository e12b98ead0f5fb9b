package model

type CurrencyConfig struct {
	Name             string  `json:"name" yaml:"name"`
	CanonicalCode    string  `json:"code" yaml:"code"`
	RawKey           string  `json:"raw_key" yaml:"raw_key"`
	ScaleFactor      float64 `json:"scale_factor" yaml:"scale_factor"`
	MinWithdraw      float64 `json:"min_withdraw" yaml:"min_withdraw"`
	IsGameToken      bool    `json:"game_token" yaml:"game_token"`
	DisplayPrecision int     `json:"precision" yaml:"precision"`
}

// CoinEntry is one currency's network power within a league.
type CoinEntry struct {
	Code        string    `json:"code"`
	DisplayName string    `json:"display_name"`
	LeaguePower HashPower `json:"league_power"`
	IsGameToken bool      `json:"game_token"`
}
