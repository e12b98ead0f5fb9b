// Package earnings projects per-currency mining income from a player's share
// of league power.
package earnings

import (
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// DefaultBlockIntervalSeconds is the block time assumed when a currency has
// no override, 9m56s.
const DefaultBlockIntervalSeconds = 596

const (
	hoursPerDay    = 24
	daysPerWeek    = 7
	daysPerMonth   = 30
	secondsPerHour = 3600
)

// DefaultBlockIntervals are the observed block times per currency.
func DefaultBlockIntervals() map[string]float64 {
	return map[string]float64{
		"BTC":   596,
		"ETH":   596,
		"BNB":   596,
		"POL":   596,
		"MATIC": 596,
		"SOL":   596,
		"DOGE":  596,
		"RST":   596,
		"TRX":   602,
		"LTC":   602,
	}
}

// ShareOf is the user's fraction of the league's power, 0 for an empty league.
func ShareOf(user, league model.HashPower) float64 {
	leagueBase := hashpower.ToBase(league)
	if leagueBase == 0 {
		return 0
	}
	return hashpower.ToBase(user) / leagueBase
}

// BlocksPerPeriod returns how many blocks land in the period for a block
// interval in seconds. Non-positive intervals yield 0.
func BlocksPerPeriod(period model.PeriodType, intervalSeconds float64) float64 {
	if intervalSeconds <= 0 {
		return 0
	}
	hourly := secondsPerHour / intervalSeconds
	switch period {
	case model.PeriodHourly:
		return hourly
	case model.PeriodDaily:
		return hourly * hoursPerDay
	case model.PeriodWeekly:
		return hourly * hoursPerDay * daysPerWeek
	case model.PeriodMonthly:
		return hourly * hoursPerDay * daysPerMonth
	}
	return 0
}

// Compute projects one currency's earnings. rewards is keyed by display name;
// a missing reward counts as 0.
func Compute(coin model.CoinEntry, user model.HashPower, rewards map[string]float64, intervalSeconds float64) model.EarningsResult {
	share := ShareOf(user, coin.LeaguePower)
	perBlock := rewards[coin.DisplayName] * share

	return model.EarningsResult{
		Code:                 coin.Code,
		DisplayName:          coin.DisplayName,
		LeaguePower:          coin.LeaguePower,
		LeaguePowerFormatted: hashpower.Format(coin.LeaguePower),
		PowerSharePercent:    share * 100,
		IsGameToken:          coin.IsGameToken,
		Earnings: model.Earnings{
			PerBlock: perBlock,
			Hourly:   perBlock * BlocksPerPeriod(model.PeriodHourly, intervalSeconds),
			Daily:    perBlock * BlocksPerPeriod(model.PeriodDaily, intervalSeconds),
			Weekly:   perBlock * BlocksPerPeriod(model.PeriodWeekly, intervalSeconds),
			Monthly:  perBlock * BlocksPerPeriod(model.PeriodMonthly, intervalSeconds),
		},
	}
}

// ComputeAll runs Compute for every coin, in order. Block intervals are looked
// up by display name, then code, then DefaultBlockIntervalSeconds.
func ComputeAll(coins []model.CoinEntry, user model.HashPower, rewards map[string]float64, intervals map[string]float64) []model.EarningsResult {
	results := make([]model.EarningsResult, 0, len(coins))
	for _, coin := range coins {
		results = append(results, Compute(coin, user, rewards, IntervalFor(coin, intervals)))
	}
	return results
}

func IntervalFor(coin model.CoinEntry, intervals map[string]float64) float64 {
	if v := intervals[coin.DisplayName]; v > 0 {
		return v
	}
	if v := intervals[coin.Code]; v > 0 {
		return v
	}
	return DefaultBlockIntervalSeconds
}

// MergeIntervals layers overrides on top of base without touching either.
func MergeIntervals(base, overrides map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
