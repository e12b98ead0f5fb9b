package league

import (
	"testing"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func threeTiers() []model.LeagueTier {
	return []model.LeagueTier{
		{ID: "a", Name: "Bronze I", MinPowerGh: 0},
		{ID: "b", Name: "Bronze II", MinPowerGh: 5_000_000},
		{ID: "c", Name: "Bronze III", MinPowerGh: 30_000_000},
	}
}

func TestResolve(t *testing.T) {
	power := model.HashPower{Value: 10, Unit: model.UnitPh} // 1e7 Gh
	tier, ok := Resolve(&power, threeTiers())
	if !ok || tier.ID != "b" {
		t.Fatalf("expected Bronze II, got %+v", tier)
	}

	power = model.HashPower{Value: 30, Unit: model.UnitPh}
	if tier, _ := Resolve(&power, threeTiers()); tier.ID != "c" {
		t.Fatalf("threshold is inclusive, expected Bronze III, got %s", tier.Name)
	}
}

func TestResolveDefaults(t *testing.T) {
	tier, ok := Resolve(nil, threeTiers())
	if !ok || tier.ID != "a" {
		t.Fatalf("nil power should fall back to the first tier, got %+v", tier)
	}

	// nothing qualifies when every threshold is above the power
	raised := []model.LeagueTier{{ID: "x", MinPowerGh: 100}, {ID: "y", MinPowerGh: 200}}
	power := model.HashPower{Value: 1, Unit: model.UnitGh}
	if tier, _ := Resolve(&power, raised); tier.ID != "x" {
		t.Fatalf("expected first tier fallback, got %s", tier.ID)
	}

	if _, ok := Resolve(&power, nil); ok {
		t.Fatal("empty tier list should not resolve")
	}
}

func TestResolveUnsortedInput(t *testing.T) {
	tiers := threeTiers()
	reversed := []model.LeagueTier{tiers[2], tiers[0], tiers[1]}
	power := model.HashPower{Value: 40, Unit: model.UnitPh}
	if tier, _ := Resolve(&power, reversed); tier.ID != "c" {
		t.Fatalf("expected Bronze III, got %s", tier.ID)
	}
	if reversed[0].ID != "c" || reversed[1].ID != "a" {
		t.Fatal("Resolve must not reorder its input")
	}
}

func TestResolveMonotonic(t *testing.T) {
	tiers := DefaultTiers()
	rank := map[string]int{}
	for i, tier := range tiers {
		rank[tier.ID] = i
	}
	last := -1
	for gh := 1.0; gh < 1e15; gh *= 3.1 {
		power := model.HashPower{Value: gh, Unit: model.UnitGh}
		tier, _ := Resolve(&power, tiers)
		if rank[tier.ID] < last {
			t.Fatalf("league went down at %g Gh: %s", gh, tier.Name)
		}
		last = rank[tier.ID]
	}
	if last != len(tiers)-1 {
		t.Fatalf("expected to reach the top league, ended at rank %d", last)
	}
}

func TestByID(t *testing.T) {
	if tier, ok := ByID(threeTiers(), "c"); !ok || tier.Name != "Bronze III" {
		t.Fatalf("unexpected lookup result %+v", tier)
	}
	if _, ok := ByID(threeTiers(), "nope"); ok {
		t.Fatal("unknown id should not be found")
	}
}

func TestResolveBelowSecondTier(t *testing.T) {
	power := model.HashPower{Value: 10, Unit: model.UnitTh} // 10,000 Gh
	if tier, _ := Resolve(&power, threeTiers()); tier.ID != "a" {
		t.Fatalf("expected Bronze I, got %s", tier.Name)
	}
}
