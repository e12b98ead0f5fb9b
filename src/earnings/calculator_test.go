package earnings

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func roughlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Abs(b)
}

func btcCoin() model.CoinEntry {
	return model.CoinEntry{
		Code:        "BTC",
		DisplayName: "BTC",
		LeaguePower: model.HashPower{Value: 100, Unit: model.UnitPh},
	}
}

func TestCompute(t *testing.T) {
	user := model.HashPower{Value: 10, Unit: model.UnitPh}
	got := Compute(btcCoin(), user, map[string]float64{"BTC": 50}, 600)

	expected := model.EarningsResult{
		Code:                 "BTC",
		DisplayName:          "BTC",
		LeaguePower:          model.HashPower{Value: 100, Unit: model.UnitPh},
		LeaguePowerFormatted: "100 Ph/s",
		PowerSharePercent:    10,
		Earnings: model.Earnings{
			PerBlock: 5,
			Hourly:   30,
			Daily:    720,
			Weekly:   5040,
			Monthly:  21600,
		},
	}
	if d := cmp.Diff(expected, got); d != "" {
		t.Fatalf("unexpected earnings: %s", d)
	}
}

func TestComputeMissingReward(t *testing.T) {
	user := model.HashPower{Value: 10, Unit: model.UnitPh}
	got := Compute(btcCoin(), user, map[string]float64{"ETH": 1}, 600)
	if got.Earnings != (model.Earnings{}) {
		t.Fatalf("missing reward should yield zero earnings, got %+v", got.Earnings)
	}
	if got.PowerSharePercent != 10 {
		t.Fatalf("share should still be reported, got %g", got.PowerSharePercent)
	}
}

func TestComputeDeterministic(t *testing.T) {
	user := model.HashPower{Value: 3.7, Unit: model.UnitEh}
	coin := model.CoinEntry{Code: "LTC", DisplayName: "LTC", LeaguePower: model.HashPower{Value: 11.322, Unit: model.UnitZh}}
	rewards := map[string]float64{"LTC": 0.0015}
	first := Compute(coin, user, rewards, 602)
	for i := 0; i < 10; i++ {
		if d := cmp.Diff(first, Compute(coin, user, rewards, 602)); d != "" {
			t.Fatalf("non deterministic result: %s", d)
		}
	}
}

func TestPeriodScaling(t *testing.T) {
	user := model.HashPower{Value: 1.3, Unit: model.UnitEh}
	coin := model.CoinEntry{Code: "DOGE", DisplayName: "DOGE", LeaguePower: model.HashPower{Value: 7.77, Unit: model.UnitZh}}
	e := Compute(coin, user, map[string]float64{"DOGE": 12.08}, 596).Earnings
	if !roughlyEqual(e.Daily, e.Hourly*24) || !roughlyEqual(e.Weekly, e.Daily*7) || !roughlyEqual(e.Monthly, e.Daily*30) {
		t.Fatalf("period scaling broken: %+v", e)
	}
}

func TestShareOf(t *testing.T) {
	if s := ShareOf(model.HashPower{Value: 1, Unit: model.UnitEh}, model.HashPower{}); s != 0 {
		t.Fatalf("empty league should give 0 share, got %g", s)
	}
	s := ShareOf(model.HashPower{Value: 500, Unit: model.UnitTh}, model.HashPower{Value: 2, Unit: model.UnitPh})
	if !roughlyEqual(s, 0.25) {
		t.Fatalf("expected 0.25, got %g", s)
	}
	for _, v := range []float64{0, 0.1, 1, 999} {
		league := model.HashPower{Value: 1000, Unit: model.UnitPh}
		s := ShareOf(model.HashPower{Value: v, Unit: model.UnitPh}, league)
		if s < 0 || s > 1 {
			t.Fatalf("share out of bounds for %g Ph: %g", v, s)
		}
	}
}

func TestBlocksPerPeriod(t *testing.T) {
	if got := BlocksPerPeriod(model.PeriodHourly, 600); got != 6 {
		t.Fatalf("expected 6 blocks an hour, got %g", got)
	}
	if got := BlocksPerPeriod(model.PeriodMonthly, 600); got != 4320 {
		t.Fatalf("expected 4320 blocks a month, got %g", got)
	}
	for _, interval := range []float64{0, -10} {
		if got := BlocksPerPeriod(model.PeriodDaily, interval); got != 0 {
			t.Fatalf("interval %g should give 0 blocks, got %g", interval, got)
		}
	}
	if got := BlocksPerPeriod(model.PeriodType("yearly"), 600); got != 0 {
		t.Fatalf("unknown period should give 0, got %g", got)
	}
}

func TestComputeAllIntervals(t *testing.T) {
	coins := []model.CoinEntry{
		{Code: "MATIC", DisplayName: "POL", LeaguePower: model.HashPower{Value: 1, Unit: model.UnitEh}},
		{Code: "LTC", DisplayName: "LTC", LeaguePower: model.HashPower{Value: 1, Unit: model.UnitEh}},
		{Code: "ETH", DisplayName: "ETH", LeaguePower: model.HashPower{Value: 1, Unit: model.UnitEh}},
	}
	user := model.HashPower{Value: 1, Unit: model.UnitEh}
	rewards := map[string]float64{"POL": 1, "LTC": 1, "ETH": 1}
	intervals := map[string]float64{"MATIC": 360, "LTC": 720, "ETH": 0}

	results := ComputeAll(coins, user, rewards, intervals)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].DisplayName != "POL" || results[0].Earnings.Hourly != 10 {
		t.Fatalf("code lookup should apply, got %+v", results[0])
	}
	if results[1].Earnings.Hourly != 5 {
		t.Fatalf("display name lookup should apply, got %+v", results[1].Earnings)
	}
	if !roughlyEqual(results[2].Earnings.Hourly, 3600.0/DefaultBlockIntervalSeconds) {
		t.Fatalf("zero override should fall back to default, got %+v", results[2].Earnings)
	}
}

func TestMergeIntervals(t *testing.T) {
	base := DefaultBlockIntervals()
	merged := MergeIntervals(base, map[string]float64{"BTC": 610})
	if merged["BTC"] != 610 || merged["TRX"] != 602 {
		t.Fatalf("unexpected merge %v", merged)
	}
	if base["BTC"] != 596 {
		t.Fatal("MergeIntervals modified its base")
	}
}

func TestComputeHalfShare(t *testing.T) {
	coin := model.CoinEntry{Code: "ETH", DisplayName: "ETH", LeaguePower: model.HashPower{Value: 2, Unit: model.UnitEh}}
	user := model.HashPower{Value: 1, Unit: model.UnitEh}
	got := Compute(coin, user, map[string]float64{"ETH": 10}, 600)
	if got.PowerSharePercent != 50 {
		t.Fatalf("expected 50%% share, got %g", got.PowerSharePercent)
	}
	if got.Earnings.PerBlock != 5 || got.Earnings.Hourly != 30 || got.Earnings.Daily != 720 {
		t.Fatalf("unexpected earnings %+v", got.Earnings)
	}
}
