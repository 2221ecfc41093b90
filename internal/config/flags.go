package config

import (
	"flag"
	"os"
	"time"

	"cinetrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file
//	-k string   TMDB API key
//	-l string   metadata service locale (e.g. pt-BR)
//	-t int      HTTP timeout in seconds
//	-i int      appearance poll interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.TMDBAPIKey, "k", cfg.TMDBAPIKey, "TMDB API key")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "metadata service locale")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	pollInterval := fs.Int("i", int(cfg.AppearancePollInterval.Seconds()), "appearance poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
	cfg.AppearancePollInterval = time.Duration(*pollInterval) * time.Second
}
