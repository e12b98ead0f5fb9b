package earnings

import (
	"math"

	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// currencies without a withdrawal timer
var untracked = map[string]bool{"ALGO": true, "USDT": true}

// WithdrawTime estimates the wait until minWithdraw is reached when the
// current balance is currentPercent of it.
func WithdrawTime(earningPerDay, minWithdraw, currentPercent float64) model.WithdrawProgress {
	return progress(earningPerDay, minWithdraw, minWithdraw*(currentPercent/100))
}

// Progress tracks balance against minWithdraw at the given daily earning.
func Progress(code string, balance, minWithdraw, earningPerDay float64) model.WithdrawProgress {
	p := progress(earningPerDay, minWithdraw, balance)
	p.Code = code
	return p
}

func progress(earningPerDay, minWithdraw, balance float64) model.WithdrawProgress {
	p := model.WithdrawProgress{
		Balance:      balance,
		MinWithdraw:  minWithdraw,
		Remaining:    math.Max(0, minWithdraw-balance),
		DailyEarning: earningPerDay,
		CanWithdraw:  balance >= minWithdraw,
	}
	if minWithdraw > 0 {
		p.ProgressPct = math.Min(100, balance/minWithdraw*100)
	} else {
		p.ProgressPct = 100
	}

	switch {
	case p.CanWithdraw:
		p.Reachable = true
	case earningPerDay > 0:
		p.DaysToWithdraw = p.Remaining / earningPerDay
		p.Reachable = true
	}
	return p
}

// WithdrawPlan computes withdrawal progress for every withdrawable currency in
// results. Game tokens and untracked currencies are skipped; balances are
// keyed by display name.
func WithdrawPlan(results []model.EarningsResult, balances map[string]float64) []model.WithdrawProgress {
	plan := make([]model.WithdrawProgress, 0, len(results))
	for _, r := range results {
		if r.IsGameToken || league.IsGameToken(r.DisplayName) || untracked[r.DisplayName] {
			continue
		}
		cfg, ok := league.CurrencyByCode(r.DisplayName)
		if !ok {
			continue
		}
		plan = append(plan, Progress(r.DisplayName, balances[r.DisplayName], cfg.MinWithdraw, r.Earnings.Daily))
	}
	return plan
}
