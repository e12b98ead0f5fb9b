package simulator

import (
	"math"

	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// StatsFromUser converts a profile feed breakdown, reported in Gh/s, into
// Stats. The absolute bonus power becomes a percentage of miners plus games.
func StatsFromUser(u model.UserPower) Stats {
	s := Stats{
		Miners: hashpower.FromGh(u.Miners),
		Racks:  hashpower.FromGh(u.Racks),
		Games:  hashpower.FromGh(u.Games),
		Temp:   hashpower.FromGh(u.Temp),
		Freon:  hashpower.FromGh(u.Freon),
	}
	if base := u.Miners + u.Games; base > 0 {
		s.BonusPercent = u.Bonus / base * 100
	}
	return s
}

// EffectivePower is the power earnings are computed from: the reported max
// power, or miners and racks plus whatever bonus freon has not eaten.
func EffectivePower(u model.UserPower) model.HashPower {
	if u.MaxPower > 0 {
		return hashpower.FromGh(u.MaxPower)
	}
	bonus := math.Max(0, u.Bonus-u.Freon)
	return hashpower.FromGh(u.Miners + u.Racks + bonus)
}

// LeagueForUser prefers the league id reported by the profile and falls back
// to resolving by effective power.
func LeagueForUser(u model.UserPower, tiers []model.LeagueTier) (model.LeagueTier, bool) {
	if u.LeagueID != "" {
		if tier, ok := league.ByID(tiers, u.LeagueID); ok {
			return tier, true
		}
	}
	power := EffectivePower(u)
	return league.Resolve(&power, tiers)
}
