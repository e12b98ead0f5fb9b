package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/onemorebsmith/rollercoin-calc/src/simulator"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var simulateCmd = &cli.Command{
	Name:  "simulate",
	Usage: "see how extra miners change your power and league",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "miners", Usage: "raw miner power", Required: true},
		&cli.Float64Flag{Name: "bonus", Usage: "total bonus percent"},
		&cli.StringFlag{Name: "racks", Usage: "rack power"},
		&cli.StringFlag{Name: "games", Usage: "games power"},
		&cli.StringFlag{Name: "temp", Usage: "temporary power"},
		&cli.StringFlag{Name: "freon", Usage: "freon power"},
		&cli.StringSliceFlag{Name: "add", Usage: "miner to add as `POWER[:BONUS]`, eg `500 Th:2.5`, repeatable"},
	},
	Action: func(cctx *cli.Context) error {
		var stats simulator.Stats
		powers := map[string]*model.HashPower{
			"miners": &stats.Miners,
			"racks":  &stats.Racks,
			"games":  &stats.Games,
			"temp":   &stats.Temp,
			"freon":  &stats.Freon,
		}
		for name, into := range powers {
			p, err := parsePowerFlag(cctx, name)
			if err != nil {
				return err
			}
			*into = p
		}
		stats.BonusPercent = cctx.Float64("bonus")

		var added []simulator.Miner
		for _, raw := range cctx.StringSlice("add") {
			m, err := parseMiner(raw)
			if err != nil {
				return err
			}
			added = append(added, m)
		}

		data, err := loadLeagueData(cctx)
		if err != nil {
			return err
		}
		res := simulator.Simulate(stats, added, data.tiers)
		fmt.Printf("total power:   %s -> %s (+%s)\n",
			hashpower.Format(res.CurrentTotal), hashpower.Format(res.NewTotal), hashpower.Format(res.AddedPower))
		fmt.Printf("league power:  %s -> %s\n",
			hashpower.Format(res.CurrentLeaguePower), hashpower.Format(res.NewLeaguePower))
		if res.IsLeagueChange {
			fmt.Printf("league:        %s -> %s\n", res.CurrentLeague.Name, res.NewLeague.Name)
		} else {
			fmt.Printf("league:        %s (unchanged)\n", res.CurrentLeague.Name)
		}
		return nil
	},
}

// parseMiner reads "POWER[:BONUS]".
func parseMiner(raw string) (simulator.Miner, error) {
	powerPart, bonusPart, hasBonus := strings.Cut(raw, ":")
	power, ok := hashpower.Parse(powerPart)
	if !ok {
		return simulator.Miner{}, errors.Errorf("could not parse miner power %q", powerPart)
	}
	m := simulator.Miner{Power: power}
	if hasBonus {
		bonus, err := strconv.ParseFloat(strings.TrimSpace(bonusPart), 64)
		if err != nil {
			return simulator.Miner{}, errors.Wrapf(err, "could not parse miner bonus %q", bonusPart)
		}
		m.BonusPercent = bonus
	}
	return m, nil
}
