package calcserver

import (
	"sync"

	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

// tierStore holds the active league table. Readers get immutable snapshots;
// a feed upload swaps in a new one.
type tierStore struct {
	mu    sync.RWMutex
	tiers []model.LeagueTier
	feed  map[string]model.FeedLeague
}

func newTierStore(tiers []model.LeagueTier) *tierStore {
	activeLeagues.Set(float64(len(tiers)))
	return &tierStore{tiers: tiers, feed: map[string]model.FeedLeague{}}
}

func (ts *tierStore) Tiers() []model.LeagueTier {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.tiers
}

// FeedLeague returns the latest feed entry for a league, if any was uploaded.
func (ts *tierStore) FeedLeague(id string) (model.FeedLeague, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	f, ok := ts.feed[id]
	return f, ok
}

// Apply merges a feed into the table and returns the new snapshot.
func (ts *tierStore) Apply(feed []model.FeedLeague) []model.LeagueTier {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tiers = league.MergeFeed(ts.tiers, feed)
	nextFeed := make(map[string]model.FeedLeague, len(ts.feed)+len(feed))
	for k, v := range ts.feed {
		nextFeed[k] = v
	}
	for _, f := range feed {
		nextFeed[f.ID] = f
	}
	ts.feed = nextFeed
	activeLeagues.Set(float64(len(ts.tiers)))
	return ts.tiers
}
