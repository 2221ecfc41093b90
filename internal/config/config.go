// Package config assembles runtime settings for the CineTrack CLI from
// defaults, an optional JSON file, command-line flags and environment
// variables, each stage overriding the previous one.
package config

import "time"

// Config holds runtime settings for the CineTrack CLI.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local store.
//   - TMDBAPIKey: API key for the movie metadata service.
//   - Language: locale passed to the metadata service.
//   - HTTPTimeout: per-request timeout for metadata calls.
//   - AppearancePollInterval: how often the theme store polls the device
//     appearance while system-following is enabled.
type Config struct {
	DatabaseDSN            string
	TMDBAPIKey             string
	Language               string
	HTTPTimeout            time.Duration
	AppearancePollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "cinetrack.db"
	c.Language = "pt-BR"
	c.HTTPTimeout = 30 * time.Second
	c.AppearancePollInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), command-line flags, and finally the environment.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
