// Package localsettings keeps CLI settings in a yaml file under the user's
// home directory.
package localsettings

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const DefaultPath = "~/.rollercalc/settings.yaml"

func defaults() model.Settings {
	return model.Settings{
		Profile:        "local",
		AutoLeague:     true,
		BlockIntervals: map[string]float64{},
		Balances:       map[string]float64{},
	}
}

// Load reads settings from path, returning defaults when the file does not
// exist yet.
func Load(path string) (model.Settings, error) {
	full, err := homedir.Expand(path)
	if err != nil {
		return model.Settings{}, errors.Wrapf(err, "failed expanding %s", path)
	}
	raw, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return model.Settings{}, errors.Wrapf(err, "failed reading %s", full)
	}
	settings := defaults()
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return model.Settings{}, errors.Wrapf(err, "failed parsing %s", full)
	}
	if settings.BlockIntervals == nil {
		settings.BlockIntervals = map[string]float64{}
	}
	if settings.Balances == nil {
		settings.Balances = map[string]float64{}
	}
	return settings, nil
}

func Save(path string, settings model.Settings) error {
	full, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrapf(err, "failed expanding %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Wrapf(err, "failed creating settings dir for %s", full)
	}
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed encoding settings")
	}
	return errors.Wrapf(os.WriteFile(full, raw, 0644), "failed writing %s", full)
}
