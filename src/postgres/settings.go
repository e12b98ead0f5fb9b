package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
)

var ErrNoSettings = errors.New("no settings stored for profile")

func PutSettings(ctx context.Context, s model.Settings) error {
	intervals, err := json.Marshal(nonNil(s.BlockIntervals))
	if err != nil {
		return errors.Wrap(err, "failed encoding block intervals")
	}
	balances, err := json.Marshal(nonNil(s.Balances))
	if err != nil {
		return errors.Wrap(err, "failed encoding balances")
	}
	return DoQuery(ctx, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `INSERT INTO settings(profile, league_id, auto_league, block_intervals, balances, updated)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (profile) DO UPDATE SET
				league_id = EXCLUDED.league_id,
				auto_league = EXCLUDED.auto_league,
				block_intervals = EXCLUDED.block_intervals,
				balances = EXCLUDED.balances,
				updated = EXCLUDED.updated`,
			s.Profile, s.LeagueID, s.AutoLeague, string(intervals), string(balances), time.Now().UTC())
		if err != nil {
			return errors.Wrapf(err, "failed to store settings for %s", s.Profile)
		}
		return nil
	})
}

func GetSettings(ctx context.Context, profile string) (model.Settings, error) {
	settings := model.Settings{Profile: profile}
	err := DoQuery(ctx, func(conn *pgx.Conn) error {
		var intervals, balances []byte
		err := conn.QueryRow(ctx, `SELECT league_id, auto_league, block_intervals, balances
			FROM settings WHERE profile = $1`, profile).
			Scan(&settings.LeagueID, &settings.AutoLeague, &intervals, &balances)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoSettings
		}
		if err != nil {
			return errors.Wrapf(err, "failed to fetch settings for %s", profile)
		}
		if err := json.Unmarshal(intervals, &settings.BlockIntervals); err != nil {
			return errors.Wrap(err, "failed decoding block intervals")
		}
		if err := json.Unmarshal(balances, &settings.Balances); err != nil {
			return errors.Wrap(err, "failed decoding balances")
		}
		return nil
	})
	return settings, err
}

func DeleteSettings(ctx context.Context, profile string) error {
	return errors.Wrapf(DoExec(ctx, `DELETE FROM settings WHERE profile = $1`, profile),
		"failed deleting settings for %s", profile)
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
