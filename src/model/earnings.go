package model

type PeriodType string

const (
	PeriodHourly  PeriodType = "hourly"
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

type Earnings struct {
	PerBlock float64 `json:"per_block" csv:"per_block"`
	Hourly   float64 `json:"hourly" csv:"hourly"`
	Daily    float64 `json:"daily" csv:"daily"`
	Weekly   float64 `json:"weekly" csv:"weekly"`
	Monthly  float64 `json:"monthly" csv:"monthly"`
}

type EarningsResult struct {
	Code                 string    `json:"code"`
	DisplayName          string    `json:"display_name"`
	LeaguePower          HashPower `json:"league_power"`
	LeaguePowerFormatted string    `json:"league_power_formatted"`
	PowerSharePercent    float64   `json:"power_share_percent"`
	Earnings             Earnings  `json:"earnings"`
	IsGameToken          bool      `json:"game_token"`
}

// WithdrawProgress tracks a balance against a currency's withdrawal minimum.
// DaysToWithdraw is only meaningful when Reachable is set.
type WithdrawProgress struct {
	Code           string  `json:"code"`
	Balance        float64 `json:"balance"`
	MinWithdraw    float64 `json:"min_withdraw"`
	Remaining      float64 `json:"remaining"`
	ProgressPct    float64 `json:"progress_percent"`
	DailyEarning   float64 `json:"daily_earning"`
	DaysToWithdraw float64 `json:"days_to_withdraw"`
	Reachable      bool    `json:"reachable"`
	CanWithdraw    bool    `json:"can_withdraw"`
}
