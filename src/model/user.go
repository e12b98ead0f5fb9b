package model

// UserPower is a player's power breakdown as reported by the profile feed.
// All powers are in Gh/s; Bonus is the absolute bonus power, not a percentage.
type UserPower struct {
	Games        float64 `json:"games"`
	Miners       float64 `json:"miners"`
	MaxPower     float64 `json:"max_Power"`
	CurrentPower float64 `json:"current_Power"`
	Decrease     float64 `json:"decrease"`
	Temp         float64 `json:"temp"`
	Racks        float64 `json:"racks"`
	Bonus        float64 `json:"bonus"`
	Freon        float64 `json:"freon"`
	LeagueID     string  `json:"league_id,omitempty"`
}

// Settings are the per-profile overrides kept between sessions.
type Settings struct {
	Profile        string             `json:"profile" yaml:"profile"`
	LeagueID       string             `json:"league_id" yaml:"league_id"`
	AutoLeague     bool               `json:"auto_league" yaml:"auto_league"`
	BlockIntervals map[string]float64 `json:"block_intervals" yaml:"block_intervals"`
	Balances       map[string]float64 `json:"balances" yaml:"balances"`
}
