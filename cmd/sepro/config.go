package main

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// RunConfig holds the run-time settings the CLI can accept either as flags
// or as a YAML sidecar file, mirroring how the teacher's own tooling
// (cmd/mkaddon) treats YAML as the declarative input for a generated run.
type RunConfig struct {
	World  string `yaml:"world"`
	Seed   *int64 `yaml:"seed,omitempty"`
	Format string `yaml:"format,omitempty"` // "dsl" or "yaml"; defaults to "dsl"
	Dump   bool   `yaml:"dump,omitempty"`
}

func defaultConfig() RunConfig {
	return RunConfig{World: "main", Format: "dsl"}
}

// loadConfigFile merges settings from a YAML sidecar file into cfg. Fields
// left zero in the file do not override cfg.
func loadConfigFile(path string, cfg *RunConfig) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sepro: reading config %s: %w", path, err)
	}
	var fromFile RunConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("sepro: parsing config %s: %w", path, err)
	}
	if fromFile.World != "" {
		cfg.World = fromFile.World
	}
	if fromFile.Seed != nil {
		cfg.Seed = fromFile.Seed
	}
	if fromFile.Format != "" {
		cfg.Format = fromFile.Format
	}
	if fromFile.Dump {
		cfg.Dump = true
	}
	return nil
}
