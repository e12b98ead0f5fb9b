// Package report renders earnings results as CSV.
package report

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
)

// Row is one currency line of an earnings report.
type Row struct {
	Code         string  `csv:"code"`
	DisplayName  string  `csv:"currency"`
	LeaguePower  string  `csv:"league_power"`
	SharePercent float64 `csv:"share_percent"`
	model.Earnings
	GameToken bool `csv:"game_token"`
}

func Rows(results []model.EarningsResult) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, Row{
			Code:         r.Code,
			DisplayName:  r.DisplayName,
			LeaguePower:  r.LeaguePowerFormatted,
			SharePercent: r.PowerSharePercent,
			Earnings:     r.Earnings,
			GameToken:    r.IsGameToken,
		})
	}
	return rows
}

func WriteCSV(w io.Writer, results []model.EarningsResult) error {
	return errors.Wrap(gocsv.Marshal(Rows(results), w), "failed writing earnings csv")
}

// SaveCSV writes the report to path, replacing any existing file.
func SaveCSV(path string, results []model.EarningsResult) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed opening %s", path)
	}
	defer file.Close()
	return WriteCSV(file, results)
}

// LoadCSV reads a report written by SaveCSV.
func LoadCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed opening %s", path)
	}
	defer file.Close()
	rows := make([]Row, 0)
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed reading %s", path)
	}
	return rows, nil
}
