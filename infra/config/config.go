package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

const (
	// DirEnv overrides the directory the config files are read from.
	DirEnv = "NEWS_FOREST_CONFIG"
	// DatasetEnv overrides the dataset path of the loaded config.
	DatasetEnv = "NEWS_FOREST_CSV"
)

// ClassifierKey is the config key for the classification pipeline.
const ClassifierKey = "classifier"

// Dir returns the config directory, honouring the DirEnv override.
func Dir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	return path
}

// Load loads the config for the given key from the given directory.
func Load(dir string, key string, v interface{}) error {

	p := filepath.Join(dir, fmt.Sprintf("%s.json", key))
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("key", key).Str("path", p).Msg("loaded config")

	return nil
}

// LoadClassifier returns the pipeline config.
// It starts from the defaults, applies the json file if there is one
// and finally the environment overrides.
func LoadClassifier() (Classifier, error) {
	cfg := DefaultClassifier()
	err := Load(Dir(), ClassifierKey, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		log.Debug().Str("dir", Dir()).Msg("no config file found, using defaults")
	}
	if p := os.Getenv(DatasetEnv); p != "" {
		cfg.Dataset.Path = p
	}
	return cfg, cfg.Validate()
}
