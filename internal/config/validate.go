package config

import (
	"fmt"
	"net/url"
	"strings"
)

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json (got %q)", c.Log.Format)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if err := c.Wiktionary.validate(); err != nil {
		return fmt.Errorf("wiktionary: %w", err)
	}
	if c.Deck.OutputDir == "" {
		return fmt.Errorf("deck.output_dir must not be empty")
	}
	return nil
}

func (w *WiktionaryConfig) validate() error {
	u, err := url.Parse(w.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http(s) (got %q)", w.BaseURL)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}
	if w.Interval < 0 {
		return fmt.Errorf("interval must be >= 0 (got %v)", w.Interval)
	}
	return nil
}

// Origins splits the comma-separated allowed origins.
func (s ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
