package config

import (
	"encoding/json"
	"os"
	"time"

	"cinetrack/internal/flagx"
	"cinetrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN            string         `json:"database_dsn"`
	TMDBAPIKey             string         `json:"tmdb_api_key"`
	Language               string         `json:"language"`
	HTTPTimeout            timex.Duration `json:"http_timeout"`
	AppearancePollInterval timex.Duration `json:"appearance_poll_interval"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file means no overlay; unreadable or malformed
// content panics (caller decides whether to recover). Zero-valued JSON
// fields leave the existing config untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.TMDBAPIKey != "" {
		cfg.TMDBAPIKey = jc.TMDBAPIKey
	}
	if jc.Language != "" {
		cfg.Language = jc.Language
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.AppearancePollInterval.Duration != 0 {
		cfg.AppearancePollInterval = time.Duration(jc.AppearancePollInterval.Duration)
	}
}
