// Package league resolves a player's league from hash power and turns league
// payout tables into per-block rewards.
package league

import (
	"sort"

	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// Resolve returns the highest tier whose threshold power reaches. Without a
// power, or when no tier qualifies, the first tier of the list is returned.
// ok is false only for an empty list.
func Resolve(power *model.HashPower, tiers []model.LeagueTier) (model.LeagueTier, bool) {
	if len(tiers) == 0 {
		return model.LeagueTier{}, false
	}
	if power == nil {
		return tiers[0], true
	}
	gh := hashpower.ToGh(*power)

	sorted := make([]model.LeagueTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinPowerGh > sorted[j].MinPowerGh
	})
	for _, t := range sorted {
		if t.MinPowerGh <= gh {
			return t, true
		}
	}
	return tiers[0], true
}

func ByID(tiers []model.LeagueTier, id string) (model.LeagueTier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return model.LeagueTier{}, false
}
