package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/onemorebsmith/rollercoin-calc/src/earnings"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/localsettings"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// updateSettings loads, modifies and saves the settings file.
func updateSettings(cctx *cli.Context, update func(s *model.Settings) error) error {
	path := cctx.String("settings")
	settings, err := localsettings.Load(path)
	if err != nil {
		return err
	}
	if err := update(&settings); err != nil {
		return err
	}
	return localsettings.Save(path, settings)
}

func codeAndNumber(cctx *cli.Context) (string, float64, error) {
	if cctx.Args().Len() != 2 {
		return "", 0, errors.New("expected CODE VALUE")
	}
	value, err := strconv.ParseFloat(cctx.Args().Get(1), 64)
	if err != nil {
		return "", 0, errors.Wrapf(err, "invalid value %q", cctx.Args().Get(1))
	}
	return strings.ToUpper(cctx.Args().Get(0)), value, nil
}

var settingsCmd = &cli.Command{
	Name:  "settings",
	Usage: "manage block times, balances and league choice",
	Subcommands: []*cli.Command{
		{
			Name:  "show",
			Usage: "print the current settings",
			Action: func(cctx *cli.Context) error {
				settings, err := localsettings.Load(cctx.String("settings"))
				if err != nil {
					return err
				}
				leagueChoice := "auto"
				if !settings.AutoLeague {
					leagueChoice = settings.LeagueID
				}
				fmt.Printf("league: %s\n\n", leagueChoice)

				intervals := earnings.MergeIntervals(earnings.DefaultBlockIntervals(), settings.BlockIntervals)
				codes := make([]string, 0, len(intervals))
				for code := range intervals {
					codes = append(codes, code)
				}
				sort.Strings(codes)
				w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CURRENCY\tBLOCK TIME (s)\tBALANCE")
				for _, code := range codes {
					fmt.Fprintf(w, "%s\t%g\t%s\n", code, intervals[code], earnings.FormatAmount(settings.Balances[code]))
				}
				return w.Flush()
			},
		},
		{
			Name:      "set-interval",
			Usage:     "override a currency's block time in seconds",
			ArgsUsage: "CODE SECONDS",
			Action: func(cctx *cli.Context) error {
				code, seconds, err := codeAndNumber(cctx)
				if err != nil {
					return err
				}
				if seconds <= 0 {
					return errors.New("block time must be positive")
				}
				return updateSettings(cctx, func(s *model.Settings) error {
					s.BlockIntervals[code] = seconds
					return nil
				})
			},
		},
		{
			Name:      "set-balance",
			Usage:     "record the balance held for a currency",
			ArgsUsage: "CODE AMOUNT",
			Action: func(cctx *cli.Context) error {
				code, amount, err := codeAndNumber(cctx)
				if err != nil {
					return err
				}
				return updateSettings(cctx, func(s *model.Settings) error {
					s.Balances[code] = amount
					return nil
				})
			},
		},
		{
			Name:      "set-league",
			Usage:     "pin a league id, or `auto` to detect it from power",
			ArgsUsage: "ID|auto",
			Action: func(cctx *cli.Context) error {
				id := cctx.Args().First()
				if id == "" {
					return errors.New("expected a league id or auto")
				}
				data, err := loadLeagueData(cctx)
				if err != nil {
					return err
				}
				return updateSettings(cctx, func(s *model.Settings) error {
					if id == "auto" {
						s.AutoLeague = true
						s.LeagueID = ""
						return nil
					}
					if _, ok := league.ByID(data.tiers, id); !ok {
						return errors.Errorf("unknown league %s", id)
					}
					s.AutoLeague = false
					s.LeagueID = id
					return nil
				})
			},
		},
	},
}
