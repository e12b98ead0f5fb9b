package simulator

import (
	"testing"

	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func TestStatsFromUser(t *testing.T) {
	u := model.UserPower{Miners: 8_000_000, Games: 2_000_000, Bonus: 2_500_000, Racks: 1_000_000}
	s := StatsFromUser(u)
	if !roughlyEqual(s.BonusPercent, 25) {
		t.Fatalf("expected 25%% bonus, got %g", s.BonusPercent)
	}
	if s.Miners.Unit != model.UnitPh || !roughlyEqual(s.Miners.Value, 8) {
		t.Fatalf("unexpected miners %v", s.Miners)
	}
	if StatsFromUser(model.UserPower{Bonus: 5}).BonusPercent != 0 {
		t.Fatal("bonus without miners or games should be 0%")
	}
}

func TestEffectivePower(t *testing.T) {
	withMax := model.UserPower{MaxPower: 3_000_000, Miners: 1}
	if p := EffectivePower(withMax); p.Unit != model.UnitPh || !roughlyEqual(p.Value, 3) {
		t.Fatalf("max power should win, got %v", p)
	}

	u := model.UserPower{Miners: 1_000_000, Racks: 500_000, Bonus: 300_000, Freon: 100_000}
	if p := EffectivePower(u); !roughlyEqual(hashpower.ToGh(p), 1_700_000) {
		t.Fatalf("unexpected fallback power %v", p)
	}

	u.Freon = 400_000
	if p := EffectivePower(u); !roughlyEqual(hashpower.ToGh(p), 1_500_000) {
		t.Fatalf("bonus minus freon must not go negative, got %v", p)
	}
}

func TestLeagueForUser(t *testing.T) {
	u := model.UserPower{MaxPower: 20_000_000, LeagueID: "high"}
	if tier, _ := LeagueForUser(u, tiers()); tier.ID != "high" {
		t.Fatalf("profile league id should win, got %s", tier.ID)
	}
	u.LeagueID = "gone"
	if tier, _ := LeagueForUser(u, tiers()); tier.ID != "mid" {
		t.Fatalf("expected power based league, got %s", tier.ID)
	}
}
