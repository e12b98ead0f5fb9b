package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

func results() []model.EarningsResult {
	return []model.EarningsResult{
		{
			Code:                 "BTC",
			DisplayName:          "BTC",
			LeaguePowerFormatted: "100 Ph/s",
			PowerSharePercent:    10,
			Earnings:             model.Earnings{PerBlock: 5, Hourly: 30, Daily: 720, Weekly: 5040, Monthly: 21600},
		},
		{Code: "RLT", DisplayName: "RLT", LeaguePowerFormatted: "2 Eh/s", IsGameToken: true},
	}
}

func TestWriteCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCSV(buf, results()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	expectedHeader := "code,currency,league_power,share_percent,per_block,hourly,daily,weekly,monthly,game_token"
	if lines[0] != expectedHeader {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "BTC,BTC,100 Ph/s,10,5,30,720,5040,21600,false") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earnings.csv")
	if err := SaveCSV(path, results()); err != nil {
		t.Fatal(err)
	}
	rows, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Rows(results()), rows); d != "" {
		t.Fatalf("unexpected rows: %s", d)
	}
}
