package league

import (
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed tiers.yaml
var builtinTiers []byte

var defaultTiers []model.LeagueTier

func init() {
	tiers, err := ParseTiers(builtinTiers)
	if err != nil {
		panic(err)
	}
	defaultTiers = tiers
}

// ParseTiers decodes a yaml league table.
func ParseTiers(raw []byte) ([]model.LeagueTier, error) {
	var tiers []model.LeagueTier
	if err := yaml.Unmarshal(raw, &tiers); err != nil {
		return nil, errors.Wrap(err, "failed parsing league table")
	}
	return tiers, nil
}

// ParseTable decodes a league table file. A .json file is read as a league
// feed document, anything else as yaml.
func ParseTable(name string, raw []byte) ([]model.LeagueTier, error) {
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return ParseTiers(raw)
	}
	var feed []model.FeedLeague
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, errors.Wrapf(err, "failed parsing league feed %s", name)
	}
	return TiersFromFeed(feed), nil
}

// DefaultTiers returns a copy of the built-in league table, lowest first.
func DefaultTiers() []model.LeagueTier {
	return cloneTiers(defaultTiers)
}

func cloneTiers(tiers []model.LeagueTier) []model.LeagueTier {
	out := make([]model.LeagueTier, len(tiers))
	for i, t := range tiers {
		t.Currencies = append([]model.CurrencyPayout(nil), t.Currencies...)
		out[i] = t
	}
	return out
}
