package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".glox.yml"

// Config holds the settings of the glox command. It is read from a YAML file
// and then overridden by command line flags.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Continuation string `yaml:"continuation"`
	History      string `yaml:"history"`
	Echo         bool   `yaml:"echo"`
}

func defaultConfig() Config {
	return Config{
		Prompt:       "> ",
		Continuation: ". ",
		History:      "~/.glox_history",
		Echo:         true,
	}
}

// loadConfig reads the config file at path. An empty path means the default
// file in the home directory, which may be missing.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, defaultConfigFile)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	if err := decodeConfig(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// historyPath expands a leading "~" in the configured history file.
func (cfg Config) historyPath() string {
	if cfg.History == "" {
		return ""
	}
	if cfg.History == "~" || strings.HasPrefix(cfg.History, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(cfg.History, "~"))
	}
	return cfg.History
}
