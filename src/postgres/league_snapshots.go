package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func PutLeagueSnapshot(ctx context.Context, id uuid.UUID, received time.Time, leagues []model.FeedLeague) error {
	raw, err := json.Marshal(leagues)
	if err != nil {
		return errors.Wrap(err, "failed encoding leagues")
	}
	return DoQuery(ctx, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `INSERT INTO league_snapshots(id, received, leagues)
			VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			id.String(), received.UTC(), string(raw))
		if err != nil {
			return errors.Wrapf(err, "failed to record league snapshot %s", id)
		}
		return nil
	})
}

// LatestLeagueSnapshot returns the most recently received feed, found is
// false when none was stored.
func LatestLeagueSnapshot(ctx context.Context) (leagues []model.FeedLeague, found bool, err error) {
	err = DoQuery(ctx, func(conn *pgx.Conn) error {
		var raw []byte
		err := conn.QueryRow(ctx, `SELECT leagues FROM league_snapshots ORDER BY received DESC LIMIT 1`).Scan(&raw)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to fetch league snapshot")
		}
		found = true
		return errors.Wrap(json.Unmarshal(raw, &leagues), "failed decoding league snapshot")
	})
	return leagues, found, err
}

// PruneLeagueSnapshots keeps only the newest keep snapshots.
func PruneLeagueSnapshots(ctx context.Context, keep uint64) error {
	pruner := fmt.Sprintf(`DELETE FROM league_snapshots WHERE received <
			(SELECT MIN(received) FROM
				(SELECT s.received FROM league_snapshots s ORDER BY received DESC LIMIT %d) AS raw)`, keep)
	return errors.Wrap(DoExec(ctx, pruner), "failed pruning league snapshots")
}

// StartPruner trims snapshots every delay until ctx is done.
func StartPruner(ctx context.Context, delay time.Duration, keep uint64, logger *zap.Logger) error {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	logger = logger.Named("pruner")
	for {
		select {
		case <-ticker.C:
			if err := PruneLeagueSnapshots(ctx, keep); err != nil {
				logger.Error(err.Error())
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
