package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/onemorebsmith/rollercoin-calc/src/earnings"
	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// leagueData is the league table plus any feed the user supplied.
type leagueData struct {
	tiers []model.LeagueTier
	feed  map[string]model.FeedLeague
}

func loadLeagueData(cctx *cli.Context) (leagueData, error) {
	data := leagueData{tiers: league.DefaultTiers(), feed: map[string]model.FeedLeague{}}
	if path := cctx.String("leagues"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return data, errors.Wrapf(err, "failed reading %s", path)
		}
		if data.tiers, err = league.ParseTable(path, raw); err != nil {
			return data, err
		}
	}
	if path := cctx.String("feed"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return data, errors.Wrapf(err, "failed reading %s", path)
		}
		var feed []model.FeedLeague
		if err := json.Unmarshal(raw, &feed); err != nil {
			return data, errors.Wrapf(err, "failed parsing feed %s", path)
		}
		data.tiers = league.MergeFeed(data.tiers, feed)
		for _, f := range feed {
			data.feed[f.ID] = f
		}
		logger.Debug("merged league feed", zap.String("path", path), zap.Int("leagues", len(feed)))
	}
	return data, nil
}

func parsePowerFlag(cctx *cli.Context, name string) (model.HashPower, error) {
	raw := cctx.String(name)
	if raw == "" {
		return model.HashPower{}, nil
	}
	p, ok := hashpower.Parse(raw)
	if !ok {
		return model.HashPower{}, errors.Errorf("could not parse --%s %q, expected something like `10 Ph/s`", name, raw)
	}
	return p, nil
}

func printRewards(w *tabwriter.Writer, rewards map[string]float64) {
	codes := make([]string, 0, len(rewards))
	for code := range rewards {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	fmt.Fprintln(w, "CURRENCY\tREWARD / BLOCK")
	for _, code := range codes {
		fmt.Fprintf(w, "%s\t%s\n", code, earnings.FormatAmount(rewards[code]))
	}
}

var leaguesCmd = &cli.Command{
	Name:  "leagues",
	Usage: "list the known leagues and their thresholds",
	Action: func(cctx *cli.Context) error {
		data, err := loadLeagueData(cctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMIN POWER\tCURRENCIES")
		for _, t := range data.tiers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", t.ID, t.Name, hashpower.FormatFromGh(t.MinPowerGh), len(t.Currencies))
		}
		return w.Flush()
	},
}

var rewardsCmd = &cli.Command{
	Name:  "rewards",
	Usage: "per-block rewards of a league, or the defaults without one",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "league", Usage: "league id"},
	},
	Action: func(cctx *cli.Context) error {
		rewards := league.DefaultBlockRewards()
		if id := cctx.String("league"); id != "" {
			data, err := loadLeagueData(cctx)
			if err != nil {
				return err
			}
			tier, ok := league.ByID(data.tiers, id)
			if !ok {
				return errors.Errorf("unknown league %s", id)
			}
			fmt.Printf("%s\n\n", tier.Name)
			rewards = league.ScaleRewards(tier)
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		printRewards(w, rewards)
		return w.Flush()
	},
}

var leagueCmd = &cli.Command{
	Name:  "league",
	Usage: "show the league a power qualifies for and its rewards",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "power", Usage: "league qualifying power, eg `10 Ph/s`", Required: true},
	},
	Action: func(cctx *cli.Context) error {
		power, err := parsePowerFlag(cctx, "power")
		if err != nil {
			return err
		}
		data, err := loadLeagueData(cctx)
		if err != nil {
			return err
		}
		tier, ok := league.Resolve(&power, data.tiers)
		if !ok {
			return errors.New("league table is empty")
		}
		fmt.Printf("%s qualifies for %s (from %s)\n\n",
			hashpower.Format(power), tier.Name, hashpower.FormatFromGh(tier.MinPowerGh))
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		printRewards(w, league.ScaleRewards(tier))
		return w.Flush()
	},
}
