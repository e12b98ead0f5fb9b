package model

// CurrencyPayout is the raw per-block payout of a currency in a league,
// expressed in that currency's smallest unit.
type CurrencyPayout struct {
	Name      string  `json:"name" yaml:"name"`
	PayoutRaw float64 `json:"payout_raw" yaml:"payout_raw"`
}

type LeagueTier struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	MinPowerGh float64          `json:"min_power_gh" yaml:"min_power_gh"`
	Currencies []CurrencyPayout `json:"currencies" yaml:"currencies"`
}

// FeedLeague is a league as published by the game's league feed.
type FeedLeague struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Level         int            `json:"level"`
	MinPower      float64        `json:"minPower"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	LastUpdatedAt string         `json:"lastUpdatedAt,omitempty"`
	Currencies    []FeedCurrency `json:"currencies"`
}

// FeedCurrency carries the network power of a currency in Gh/s and the raw
// per-block payout.
type FeedCurrency struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalPower   float64 `json:"totalPower"`
	UserCount    int     `json:"userCount"`
	PayoutAmount float64 `json:"payoutAmount"`
}
