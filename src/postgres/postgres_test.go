package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
)

var pgAvailable bool

func TestMain(m *testing.M) {
	ConfigureDockerConnection()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	pgAvailable = Ping(ctx) == nil && EnsureSchema(ctx) == nil
	cancel()
	os.Exit(m.Run())
}

func requirePostgres(t *testing.T) {
	if !pgAvailable {
		t.Skip("postgres unavailable")
	}
}

func TestSettings(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()
	profile := "test-" + uuid.NewString()
	defer DeleteSettings(ctx, profile)

	if _, err := GetSettings(ctx, profile); !errors.Is(err, ErrNoSettings) {
		t.Fatalf("expected ErrNoSettings, got %v", err)
	}

	expected := model.Settings{
		Profile:        profile,
		LeagueID:       "68af01ce48490927df92d684",
		AutoLeague:     false,
		BlockIntervals: map[string]float64{"BTC": 610},
		Balances:       map[string]float64{"POL": 120.5},
	}
	if err := PutSettings(ctx, expected); err != nil {
		t.Fatal(err)
	}
	got, err := GetSettings(ctx, profile)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(expected, got); d != "" {
		t.Fatalf("unexpected settings: %s", d)
	}

	expected.Balances = nil
	if err := PutSettings(ctx, expected); err != nil {
		t.Fatal(err)
	}
	got, _ = GetSettings(ctx, profile)
	if len(got.Balances) != 0 || got.BlockIntervals["BTC"] != 610 {
		t.Fatalf("upsert did not replace balances: %+v", got)
	}
}

func TestLeagueSnapshots(t *testing.T) {
	requirePostgres(t)
	ctx := context.Background()
	leagues := []model.FeedLeague{{ID: uuid.NewString(), Title: "Bronze I", Currencies: []model.FeedCurrency{{Name: "RLT", PayoutAmount: 1}}}}
	if err := PutLeagueSnapshot(ctx, uuid.New(), time.Now().Add(time.Hour), leagues); err != nil {
		t.Fatal(err)
	}
	got, found, err := LatestLeagueSnapshot(ctx)
	if err != nil || !found {
		t.Fatalf("expected a snapshot, found=%t err=%v", found, err)
	}
	if d := cmp.Diff(leagues, got); d != "" {
		t.Fatalf("unexpected snapshot: %s", d)
	}
	if err := PruneLeagueSnapshots(ctx, 1); err != nil {
		t.Fatal(err)
	}
}
