// Package botcfg loads the optional YAML configuration. There are no CLI
// flags; a missing config file just means the defaults.
package botcfg

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is probed in the working directory at startup.
const DefaultPath = "chatbot.yaml"

type Config struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt"`
	// MemoryPath, when set, is autoloaded at startup and autosaved after
	// every chat turn. Empty disables both.
	MemoryPath string `yaml:"memory_path"`
	// HistoryLimit caps the persisted transcript; 0 or negative keeps all.
	HistoryLimit int `yaml:"history_limit"`
	// LogLevel is a logrus level name; unparseable values fall back to warn.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Prompt:       ":> ",
		HistoryLimit: 200,
		LogLevel:     "warn",
	}
}

// Load reads the YAML file at path over the defaults: fields absent from the
// file keep their default value. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(err, "parse config")
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	return cfg, nil
}
