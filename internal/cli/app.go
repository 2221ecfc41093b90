// Package cli implements the interactive CineTrack shell: screens become
// commands, and the three state stores plus the catalog client are wired
// together here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"cinetrack/internal/config"
	"cinetrack/internal/favorites"
	"cinetrack/internal/identity"
	"cinetrack/internal/logging"
	"cinetrack/internal/settings"
	"cinetrack/internal/storage"
	"cinetrack/internal/theme"
	"cinetrack/internal/tmdb"
)

// App owns the services and the interactive loop.
type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	identity  *identity.Service
	favorites *favorites.Service
	theme     *theme.Service
	settings  *settings.Service
	catalog   *tmdb.Client
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the local store, constructs the services in dependency order
// (identity before favorites) and bootstraps persisted state.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	repo := storage.NewSQLiteRepository(db)

	ident := identity.NewService(repo, logger)
	favs := favorites.NewService(repo, ident, logger)
	themes := theme.NewService(repo, theme.NewEnvSource(), logger)
	prefs := settings.NewService(repo, logger)

	if err := ident.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := themes.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := prefs.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	catalog := tmdb.NewClient(cfg.TMDBAPIKey,
		tmdb.WithLanguage(cfg.Language),
		tmdb.WithTimeout(cfg.HTTPTimeout),
	)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		identity:  ident,
		favorites: favs,
		theme:     themes,
		settings:  prefs,
		catalog:   catalog,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the appearance watcher and enters the interactive loop.
func (a *App) Run(ctx context.Context) {
	go a.theme.Watch(ctx, a.config.AppearancePollInterval)
	a.Root(ctx)
}

// Close releases the local store handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.identity.IsAuthenticated()
}
