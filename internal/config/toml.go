// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Fields are pointers
// so an absent key can be told apart from a zero value when merging with
// command-line flags.
type FileConfig struct {
	Collect CollectConfig `toml:"collect"`
	OnOff   OnOffConfig   `toml:"onoff"`
	Serve   ServeConfig   `toml:"serve"`
}

// CollectConfig maps season collection settings.
type CollectConfig struct {
	Team     *string `toml:"team"`
	Sport    *string `toml:"sport"`
	Season   *int    `toml:"season"`
	Division *int    `toml:"division"`
	Browser  *bool   `toml:"browser"`
	OutDir   *string `toml:"out-dir"`
}

// OnOffConfig maps on/off analysis settings.
type OnOffConfig struct {
	Team   *string `toml:"team"`
	OutDir *string `toml:"out-dir"`
}

// ServeConfig maps HTTP server settings.
type ServeConfig struct {
	Addr *string `toml:"addr"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
