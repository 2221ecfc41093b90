package config

import "os"

// parseEnv overlays cfg with environment variables. This runs last so a
// .env-provided key wins over file and flag values.
//
//	TMDB_API_KEY        metadata service API key
//	CINETRACK_DB        local database path
//	CINETRACK_LANGUAGE  metadata service locale
func parseEnv(cfg *Config) {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.TMDBAPIKey = v
	}
	if v := os.Getenv("CINETRACK_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("CINETRACK_LANGUAGE"); v != "" {
		cfg.Language = v
	}
}
