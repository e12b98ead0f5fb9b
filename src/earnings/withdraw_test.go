package earnings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func TestWithdrawTime(t *testing.T) {
	got := WithdrawTime(10, 300, 50)
	expected := model.WithdrawProgress{
		Balance:        150,
		MinWithdraw:    300,
		Remaining:      150,
		ProgressPct:    50,
		DailyEarning:   10,
		DaysToWithdraw: 15,
		Reachable:      true,
	}
	if d := cmp.Diff(expected, got); d != "" {
		t.Fatalf("unexpected progress: %s", d)
	}

	ready := WithdrawTime(0, 300, 120)
	if !ready.CanWithdraw || ready.DaysToWithdraw != 0 || ready.Remaining != 0 || ready.ProgressPct != 100 {
		t.Fatalf("expected a ready withdrawal, got %+v", ready)
	}

	stalled := WithdrawTime(0, 300, 10)
	if stalled.Reachable || stalled.CanWithdraw {
		t.Fatalf("no earnings should never reach the minimum, got %+v", stalled)
	}
}

func TestWithdrawPlan(t *testing.T) {
	results := []model.EarningsResult{
		{Code: "RLT", DisplayName: "RLT", IsGameToken: true, Earnings: model.Earnings{Daily: 5}},
		{Code: "USDT", DisplayName: "USDT", Earnings: model.Earnings{Daily: 5}},
		{Code: "MATIC", DisplayName: "POL", Earnings: model.Earnings{Daily: 20}},
		{Code: "BTC", DisplayName: "BTC", Earnings: model.Earnings{Daily: 0.0001}},
		{Code: "ZZZ", DisplayName: "ZZZ", Earnings: model.Earnings{Daily: 1}},
	}
	plan := WithdrawPlan(results, map[string]float64{"POL": 100})
	if len(plan) != 2 {
		t.Fatalf("expected POL and BTC only, got %+v", plan)
	}
	if plan[0].Code != "POL" || plan[0].DaysToWithdraw != 10 || plan[0].Remaining != 200 {
		t.Fatalf("unexpected POL progress %+v", plan[0])
	}
	if plan[1].Code != "BTC" || plan[1].Balance != 0 || plan[1].MinWithdraw != 0.00085 {
		t.Fatalf("unexpected BTC progress %+v", plan[1])
	}
}
