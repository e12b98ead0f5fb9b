package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
)

// FeedSnapshot is the last league feed accepted by any server.
type FeedSnapshot struct {
	ID         string             `json:"id"`
	ReceivedAt time.Time          `json:"received_at"`
	Leagues    []model.FeedLeague `json:"leagues"`
}

type SnapshotStore struct {
	client *redis.Client
	key    string
}

func NewSnapshotStore(rd *redis.Client, key string) *SnapshotStore {
	return &SnapshotStore{client: rd, key: key}
}

func (s *SnapshotStore) Put(ctx context.Context, snap FeedSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "failed encoding feed snapshot")
	}
	return errors.Wrap(s.client.Set(ctx, s.key, raw, 0).Err(), "failed storing feed snapshot")
}

// Get returns the stored snapshot, ok is false when none was stored yet.
func (s *SnapshotStore) Get(ctx context.Context) (FeedSnapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return FeedSnapshot{}, false, nil
	}
	if err != nil {
		return FeedSnapshot{}, false, errors.Wrap(err, "failed fetching feed snapshot")
	}
	var snap FeedSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return FeedSnapshot{}, false, errors.Wrap(err, "failed decoding feed snapshot")
	}
	return snap, true, nil
}
