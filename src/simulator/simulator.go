// Package simulator models a player's power breakdown and the effect of
// adding miners to it.
package simulator

import (
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// Stats is a player's power breakdown. BonusPercent multiplies miner and
// games power; racks, temp and freon are flat additions.
type Stats struct {
	Miners       model.HashPower `json:"miners"`
	BonusPercent float64         `json:"bonus_percent"`
	Racks        model.HashPower `json:"racks"`
	Games        model.HashPower `json:"games"`
	Temp         model.HashPower `json:"temp"`
	Freon        model.HashPower `json:"freon"`
}

// Miner is a piece of equipment being considered for purchase.
type Miner struct {
	Name         string          `json:"name,omitempty"`
	Power        model.HashPower `json:"power"`
	BonusPercent float64         `json:"bonus_percent"`
}

type Result struct {
	CurrentTotal       model.HashPower  `json:"current_total"`
	NewTotal           model.HashPower  `json:"new_total"`
	AddedPower         model.HashPower  `json:"added_power"`
	CurrentLeaguePower model.HashPower  `json:"current_league_power"`
	NewLeaguePower     model.HashPower  `json:"new_league_power"`
	CurrentLeague      model.LeagueTier `json:"current_league"`
	NewLeague          model.LeagueTier `json:"new_league"`
	IsLeagueChange     bool             `json:"league_change"`
}

func multiplier(s Stats) float64 {
	return 1 + s.BonusPercent/100
}

// TotalBase is the displayed total power in H/s.
func TotalBase(s Stats) float64 {
	miners := hashpower.ToBase(s.Miners)
	games := hashpower.ToBase(s.Games)
	return (miners+games)*multiplier(s) +
		hashpower.ToBase(s.Racks) + hashpower.ToBase(s.Temp) + hashpower.ToBase(s.Freon)
}

// LeagueBase is the power league placement uses, in H/s. Games and
// temporary boosts do not count.
func LeagueBase(s Stats) float64 {
	return hashpower.ToBase(s.Miners)*multiplier(s) + hashpower.ToBase(s.Racks)
}

func TotalPower(s Stats) model.HashPower {
	return hashpower.AutoScale(TotalBase(s))
}

func LeaguePower(s Stats) model.HashPower {
	return hashpower.AutoScale(LeagueBase(s))
}

// WithMiners returns s with the miners' power and bonus folded in.
func WithMiners(s Stats, added ...Miner) Stats {
	minerBase := hashpower.ToBase(s.Miners)
	for _, m := range added {
		minerBase += hashpower.ToBase(m.Power)
		s.BonusPercent += m.BonusPercent
	}
	s.Miners = hashpower.AutoScale(minerBase)
	return s
}

// Simulate compares s before and after adding miners, including the league
// each side would be placed in.
func Simulate(s Stats, added []Miner, tiers []model.LeagueTier) Result {
	next := WithMiners(s, added...)

	currentTotal := TotalBase(s)
	newTotal := TotalBase(next)
	currentLeaguePower := LeaguePower(s)
	newLeaguePower := LeaguePower(next)

	currentTier, _ := league.Resolve(&currentLeaguePower, tiers)
	newTier, _ := league.Resolve(&newLeaguePower, tiers)

	return Result{
		CurrentTotal:       TotalPower(s),
		NewTotal:           TotalPower(next),
		AddedPower:         hashpower.AutoScale(newTotal - currentTotal),
		CurrentLeaguePower: currentLeaguePower,
		NewLeaguePower:     newLeaguePower,
		CurrentLeague:      currentTier,
		NewLeague:          newTier,
		IsLeagueChange:     newTier.ID != currentTier.ID,
	}
}
