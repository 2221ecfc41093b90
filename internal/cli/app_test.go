package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetrack/internal/common"
	"cinetrack/internal/config"
	"cinetrack/internal/favorites"
	"cinetrack/internal/identity"
	"cinetrack/internal/logging"
	"cinetrack/internal/settings"
	"cinetrack/internal/storage"
	"cinetrack/internal/theme"
	"cinetrack/internal/tmdb"
)

func newTestApp(t *testing.T, catalog *tmdb.Client) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	repo := storage.NewSQLiteRepository(db)

	logger := logging.NewDiscard()
	ident := identity.NewService(repo, logger)
	favs := favorites.NewService(repo, ident, logger)
	themes := theme.NewService(repo, theme.NewEnvSource(), logger)
	prefs := settings.NewService(repo, logger)

	ctx := context.Background()
	require.NoError(t, ident.Bootstrap(ctx))
	require.NoError(t, themes.Bootstrap(ctx))
	require.NoError(t, prefs.Bootstrap(ctx))

	var out bytes.Buffer
	return &App{
		config:    &config.Config{},
		logger:    logger,
		db:        db,
		identity:  ident,
		favorites: favs,
		theme:     themes,
		settings:  prefs,
		catalog:   catalog,
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       &out,
	}, &out
}

func newCatalog(t *testing.T, handler http.Handler) *tmdb.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL))
}

// stubText queues answers for the text-prompt seam.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	restore := getSimpleText
	t.Cleanup(func() { getSimpleText = restore })
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", errors.New("no more stubbed answers")
		}
		a := answers[i]
		i++
		return a, nil
	}
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	restore := getPassword
	t.Cleanup(func() { getPassword = restore })
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	restore := confirm
	t.Cleanup(func() { confirm = restore })
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return answer, nil
	}
}

func TestUserMessage_MapsSentinels(t *testing.T) {
	assert.Equal(t, msgNotAuthenticated, userMessage(common.ErrNotAuthenticated))
	assert.Equal(t, msgInvalidCredentials, userMessage(common.ErrInvalidCredentials))
	assert.Equal(t, msgDuplicateEmail, userMessage(common.ErrDuplicateEmail))
	assert.Equal(t, msgIncompleteData, userMessage(fmt.Errorf("%w: campo", common.ErrValidation)))
	assert.Equal(t, msgNotInFavorites, userMessage(fmt.Errorf("%w: 99", common.ErrNotFound)))
	assert.Equal(t, msgGenericFailure, userMessage(errors.New("qualquer outra coisa")))
}

func TestRegisterThenLoginFlow(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()

	stubText(t, "Ana", "ana@example.com")
	stubPassword(t, "s3nha")
	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), "Conta criada!")
	assert.False(t, app.isLoggedIn(), "register must not log in")

	stubText(t, "ana@example.com")
	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "Bem-vindo, Ana!")
	assert.True(t, app.isLoggedIn())
}

func TestLogin_BadCredentialsMessage(t *testing.T) {
	app, out := newTestApp(t, nil)

	stubText(t, identity.DefaultUserEmail)
	stubPassword(t, "errada")
	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Contains(t, out.String(), msgInvalidCredentials)
}

func TestLogout_RequiresConfirmation(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))

	stubConfirm(t, false)
	require.NoError(t, app.Logout(ctx))
	assert.True(t, app.isLoggedIn(), "declining keeps the session")

	stubConfirm(t, true)
	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Até logo!")
}

func TestFavoritesCmd_BlockedWhenLoggedOut(t *testing.T) {
	requested := false
	catalog := newCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		_, _ = w.Write([]byte(`{"id":603,"title":"Matrix"}`))
	}))
	app, out := newTestApp(t, catalog)

	err := app.FavoritesCmd(context.Background(), []string{"add", "603"})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Contains(t, out.String(), msgRestrictedAction)
	assert.False(t, requested, "the catalog must not be consulted while logged out")
}

func TestFavoritesCmd_AddFetchesProjection(t *testing.T) {
	catalog := newCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":603,"title":"Matrix","poster_path":"/p.jpg","vote_average":8.2,"release_date":"1999-03-31"}`))
	}))
	app, out := newTestApp(t, catalog)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))

	require.NoError(t, app.FavoritesCmd(ctx, []string{"add", "603"}))
	assert.Contains(t, out.String(), "Favoritos atualizados.")

	list := app.favorites.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Matrix", list[0].Title)
	assert.InDelta(t, 8.2, list[0].VoteAverage, 0.001)
}

func TestFavoritesCmd_CatalogFailure(t *testing.T) {
	catalog := newCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	app, out := newTestApp(t, catalog)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))

	err := app.FavoritesCmd(ctx, []string{"add", "99999"})
	require.Error(t, err)
	assert.Contains(t, out.String(), msgFetchFailure)
	assert.Empty(t, app.favorites.List())
}

func TestFavoritesCmd_RemoveMissing(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))

	err := app.FavoritesCmd(ctx, []string{"rm", "42"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, out.String(), msgNotInFavorites)
}

func TestFavoritesCmd_ClearConfirmed(t *testing.T) {
	catalog := newCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":603,"title":"Matrix"}`))
	}))
	app, _ := newTestApp(t, catalog)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))
	require.NoError(t, app.FavoritesCmd(ctx, []string{"add", "603"}))

	stubConfirm(t, true)
	require.NoError(t, app.FavoritesCmd(ctx, []string{"clear"}))
	assert.Empty(t, app.favorites.List())
}

func TestProfileCmd_UpdatesName(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))

	require.NoError(t, app.Profile(ctx, []string{"name", "Renomeado"}))
	assert.Contains(t, out.String(), "Perfil atualizado.")
	assert.Equal(t, "Renomeado", app.identity.Session().Name)
}

func TestProfileCmd_RequiresLogin(t *testing.T) {
	app, out := newTestApp(t, nil)

	err := app.Profile(context.Background(), []string{"name", "X"})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Contains(t, out.String(), msgNotAuthenticated)
}

func TestThemeCmd_PinAndShow(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()

	require.NoError(t, app.ThemeCmd(ctx, []string{"light"}))
	assert.Contains(t, out.String(), "Tema: light (fixo)")

	out.Reset()
	require.NoError(t, app.ThemeCmd(ctx, []string{"system", "on"}))
	assert.Contains(t, out.String(), "seguindo o sistema")
}

func TestSettingsCmd_Toggle(t *testing.T) {
	app, out := newTestApp(t, nil)

	require.NoError(t, app.SettingsCmd(context.Background(), []string{"notifications", "off"}))
	assert.Contains(t, out.String(), "Notificações: off")
	assert.Contains(t, out.String(), "Sincronização automática: on")
}

func TestWhoAmI(t *testing.T) {
	app, out := newTestApp(t, nil)
	ctx := context.Background()

	app.WhoAmI()
	assert.Contains(t, out.String(), msgNotAuthenticated)

	out.Reset()
	require.NoError(t, app.identity.Login(ctx, identity.DefaultUserEmail, identity.DefaultUserPassword))
	app.WhoAmI()
	assert.Contains(t, out.String(), identity.DefaultUserName)
	assert.Contains(t, out.String(), identity.DefaultUserEmail)
}
