package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"cinetrack/internal/cli"
	"cinetrack/internal/config"
	"cinetrack/internal/logging"
)

func main() {
	// .env is optional; it usually carries TMDB_API_KEY.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
