package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/onemorebsmith/rollercoin-calc/src/earnings"
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/leaguetext"
	"github.com/onemorebsmith/rollercoin-calc/src/localsettings"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/onemorebsmith/rollercoin-calc/src/report"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var earningsCmd = &cli.Command{
	Name:  "earnings",
	Usage: "project earnings per currency for a hash power",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "power", Usage: "your power, eg `11.3 Eh/s`", Required: true},
		&cli.StringFlag{Name: "league-text", Usage: "file with the league power list copied from the game"},
		&cli.StringFlag{Name: "league", Usage: "league id, overrides auto detection"},
		&cli.StringFlag{Name: "csv", Usage: "also write the table to this csv file"},
	},
	Action: func(cctx *cli.Context) error {
		power, err := parsePowerFlag(cctx, "power")
		if err != nil {
			return err
		}
		settings, err := localsettings.Load(cctx.String("settings"))
		if err != nil {
			return err
		}
		data, err := loadLeagueData(cctx)
		if err != nil {
			return err
		}

		tier, err := pickLeague(cctx, settings, power, data.tiers)
		if err != nil {
			return err
		}
		coins, err := pickCoins(cctx, tier, data)
		if err != nil {
			return err
		}
		logger.Debug("computing earnings",
			zap.String("league", tier.Name), zap.Int("coins", len(coins)), zap.String("power", hashpower.Format(power)))

		intervals := earnings.MergeIntervals(earnings.DefaultBlockIntervals(), settings.BlockIntervals)
		results := earnings.ComputeAll(coins, power, league.ScaleRewards(tier), intervals)

		fmt.Printf("%s in %s\n\n", hashpower.Format(power), tier.Name)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CURRENCY\tLEAGUE POWER\tSHARE\tBLOCK\tDAY\tWEEK\tMONTH")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%.6f%%\t%s\t%s\t%s\t%s\n", r.DisplayName, r.LeaguePowerFormatted, r.PowerSharePercent,
				earnings.FormatAmount(r.Earnings.PerBlock), earnings.FormatAmount(r.Earnings.Daily),
				earnings.FormatAmount(r.Earnings.Weekly), earnings.FormatAmount(r.Earnings.Monthly))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if plan := earnings.WithdrawPlan(results, settings.Balances); len(plan) > 0 {
			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CURRENCY\tBALANCE\tMINIMUM\tPROGRESS\tWITHDRAW IN")
			for _, p := range plan {
				eta := "-"
				switch {
				case p.CanWithdraw:
					eta = "now"
				case p.Reachable:
					eta = earnings.FormatDuration(p.DaysToWithdraw)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%s\n", p.Code, earnings.FormatAmount(p.Balance),
					earnings.FormatAmount(p.MinWithdraw), p.ProgressPct, eta)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if path := cctx.String("csv"); path != "" {
			return report.SaveCSV(path, results)
		}
		return nil
	},
}

func pickLeague(cctx *cli.Context, settings model.Settings, power model.HashPower, tiers []model.LeagueTier) (model.LeagueTier, error) {
	id := cctx.String("league")
	if id == "" && !settings.AutoLeague {
		id = settings.LeagueID
	}
	if id != "" {
		tier, ok := league.ByID(tiers, id)
		if !ok {
			return tier, errors.Errorf("unknown league %s", id)
		}
		return tier, nil
	}
	tier, ok := league.Resolve(&power, tiers)
	if !ok {
		return tier, errors.New("league table is empty")
	}
	return tier, nil
}

func pickCoins(cctx *cli.Context, tier model.LeagueTier, data leagueData) ([]model.CoinEntry, error) {
	if path := cctx.String("league-text"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed reading %s", path)
		}
		if coins := leaguetext.Parse(string(raw)); len(coins) > 0 {
			return coins, nil
		}
		return nil, errors.Errorf("no league powers found in %s", path)
	}
	if f, ok := data.feed[tier.ID]; ok {
		return league.CoinsFromFeed(f), nil
	}
	return nil, errors.New("league powers unknown, pass --league-text or --feed")
}
