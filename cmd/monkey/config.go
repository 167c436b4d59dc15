package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	modeEval   = "eval"
	modeTokens = "tokens"
	modeAST    = "ast"
)

// config holds the settings read from the YAML config file
type config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
	Mode        string `yaml:"mode"`
}

func defaultConfig() config {
	cfg := config{
		Prompt:   ">> ",
		Color:    true,
		LogLevel: "warn",
		Mode:     modeEval,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".monkey_history")
	}
	return cfg
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monkey.yml")
}

// loadConfig reads path over the defaults. A missing file is only an
// error when it was asked for explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Mode {
	case modeEval, modeTokens, modeAST:
		return nil
	}
	return fmt.Errorf("config: unknown mode %q", c.Mode)
}
