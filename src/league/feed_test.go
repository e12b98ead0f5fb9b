package league

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func exampleFeed() model.FeedLeague {
	return model.FeedLeague{
		ID:       "68af01ce48490927df92d687",
		Title:    "Bronze I",
		Level:    1,
		MinPower: 0,
		Currencies: []model.FeedCurrency{
			{Name: "SAT", TotalPower: 11_322_000_000, PayoutAmount: 30000},
			{Name: "RLT", TotalPower: 1_500, PayoutAmount: 900000},
		},
	}
}

func TestTierFromFeed(t *testing.T) {
	expected := model.LeagueTier{
		ID:         "68af01ce48490927df92d687",
		Name:       "Bronze I",
		MinPowerGh: 0,
		Currencies: []model.CurrencyPayout{{Name: "SAT", PayoutRaw: 30000}, {Name: "RLT", PayoutRaw: 900000}},
	}
	if d := cmp.Diff(expected, TierFromFeed(exampleFeed())); d != "" {
		t.Fatalf("unexpected tier: %s", d)
	}
}

func TestCoinsFromFeed(t *testing.T) {
	coins := CoinsFromFeed(exampleFeed())
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(coins))
	}
	if coins[0].Code != "BTC" || coins[0].LeaguePower.Unit != model.UnitEh || coins[0].IsGameToken {
		t.Fatalf("unexpected BTC entry %+v", coins[0])
	}
	if coins[1].DisplayName != "RLT" || coins[1].LeaguePower.Unit != model.UnitTh || !coins[1].IsGameToken {
		t.Fatalf("unexpected RLT entry %+v", coins[1])
	}
}

func TestMergeFeed(t *testing.T) {
	current := DefaultTiers()
	feed := exampleFeed()
	unknown := model.FeedLeague{ID: "unknown", Title: "Mystery"}
	merged := MergeFeed(current, []model.FeedLeague{feed, unknown})

	if len(merged) != len(current) {
		t.Fatalf("unknown feed leagues must be ignored, got %d tiers", len(merged))
	}
	if d := cmp.Diff(TierFromFeed(feed), merged[0]); d != "" {
		t.Fatalf("bronze I was not refreshed: %s", d)
	}
	if d := cmp.Diff(current[1:], merged[1:]); d != "" {
		t.Fatalf("other leagues changed: %s", d)
	}
	if d := cmp.Diff(DefaultTiers(), current); d != "" {
		t.Fatalf("MergeFeed modified its input: %s", d)
	}
}
