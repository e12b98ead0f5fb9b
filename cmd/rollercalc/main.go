package main

import (
	"fmt"
	"os"

	"github.com/onemorebsmith/rollercoin-calc/src/common"
	"github.com/onemorebsmith/rollercoin-calc/src/localsettings"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func main() {
	app := &cli.App{
		Name:  "rollercalc",
		Usage: "estimate mining earnings per league and currency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				EnvVars: []string{"ROLLERCALC_SETTINGS"},
				Value:   localsettings.DefaultPath,
				Usage:   "path of the settings file",
			},
			&cli.StringFlag{
				Name:  "leagues",
				Usage: "yaml league table, or league feed json, to use instead of the built-in one",
			},
			&cli.StringFlag{
				Name:  "feed",
				Usage: "league feed json to merge into the league table",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(cctx *cli.Context) error {
			level := zap.WarnLevel
			if cctx.Bool("verbose") {
				level = zap.DebugLevel
			}
			logger = common.ConfigureZap(level)
			return nil
		},
		Commands: []*cli.Command{
			leaguesCmd,
			leagueCmd,
			rewardsCmd,
			earningsCmd,
			simulateCmd,
			settingsCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
