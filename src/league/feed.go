package league

import (
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func TierFromFeed(f model.FeedLeague) model.LeagueTier {
	tier := model.LeagueTier{
		ID:         f.ID,
		Name:       f.Title,
		MinPowerGh: f.MinPower,
		Currencies: make([]model.CurrencyPayout, 0, len(f.Currencies)),
	}
	for _, c := range f.Currencies {
		tier.Currencies = append(tier.Currencies, model.CurrencyPayout{Name: c.Name, PayoutRaw: c.PayoutAmount})
	}
	return tier
}

func TiersFromFeed(feed []model.FeedLeague) []model.LeagueTier {
	tiers := make([]model.LeagueTier, 0, len(feed))
	for _, f := range feed {
		tiers = append(tiers, TierFromFeed(f))
	}
	return tiers
}

// CoinsFromFeed lists the network power of each currency in a feed league.
func CoinsFromFeed(f model.FeedLeague) []model.CoinEntry {
	coins := make([]model.CoinEntry, 0, len(f.Currencies))
	for _, c := range f.Currencies {
		code := CanonicalCode(c.Name)
		coins = append(coins, model.CoinEntry{
			Code:        code,
			DisplayName: code,
			LeaguePower: hashpower.FromGh(c.TotalPower),
			IsGameToken: IsGameToken(code),
		})
	}
	return coins
}

// MergeFeed refreshes the tiers whose id appears in the feed. Feed leagues
// with unknown ids are ignored and current is left untouched.
func MergeFeed(current []model.LeagueTier, feed []model.FeedLeague) []model.LeagueTier {
	byID := make(map[string]model.FeedLeague, len(feed))
	for _, f := range feed {
		byID[f.ID] = f
	}
	merged := cloneTiers(current)
	for i, t := range merged {
		if f, ok := byID[t.ID]; ok {
			merged[i] = TierFromFeed(f)
		}
	}
	return merged
}
