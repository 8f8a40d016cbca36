// Package config loads CLI configuration from the XDG config dir. Only the
// AnkiConnect endpoint, the target deck, and the request timeout live here;
// a missing file yields the documented defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raine/anki-llm/internal/xdg"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultEndpoint is where AnkiConnect listens out of the box.
	DefaultEndpoint = "http://127.0.0.1:8765"
	// DefaultDeck is the deck the original scripts were written against.
	DefaultDeck = "Glossika-ENJA [2001-3000]"

	defaultTimeoutSeconds = 10
)

// Config holds the CLI settings.
type Config struct {
	Endpoint       string `toml:"endpoint"`
	Deck           string `toml:"deck"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	cfg := defaults()
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", p, err)
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(cfg.Deck) == "" {
		cfg.Deck = DefaultDeck
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		Deck:           DefaultDeck,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}
