package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cinetrack/internal/common"
)

// FavoritesCmd dispatches the fav subcommands:
//
//	fav              list favorites
//	fav add <id>     fetch the movie and add it
//	fav rm <id>      remove a favorite
//	fav toggle <id>  add or remove depending on membership
//	fav clear        delete the whole list (asks for confirmation)
func (a *App) FavoritesCmd(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		a.listFavorites()
		return nil
	}

	switch args[0] {
	case "add", "toggle":
		id, err := parseMovieID(args[1:])
		if err != nil {
			fmt.Fprintln(a.out, "Uso: fav", args[0], "<id>")
			return nil
		}
		return a.mutateFavorite(ctx, args[0], id)
	case "rm":
		id, err := parseMovieID(args[1:])
		if err != nil {
			fmt.Fprintln(a.out, "Uso: fav rm <id>")
			return nil
		}
		return a.reportFavoriteErr(a.favorites.Remove(ctx, id))
	case "clear":
		return a.clearFavorites(ctx)
	default:
		fmt.Fprintln(a.out, "Uso: fav [list|add <id>|rm <id>|toggle <id>|clear]")
		return nil
	}
}

func (a *App) listFavorites() {
	movies := a.favorites.List()
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "Nenhum filme favorito.")
		return
	}
	for _, m := range movies {
		fmt.Fprintf(a.out, "%8d  %-40s  %.1f  %s\n", m.ID, m.Title, m.VoteAverage, m.ReleaseDate)
	}
}

// mutateFavorite fetches the movie projection from the catalog before
// touching the list, so the stored entry carries title and rating.
func (a *App) mutateFavorite(ctx context.Context, op string, id int64) error {
	if !a.isLoggedIn() {
		// Blocking prompt, not a silent no-op: the user is told to sign in.
		fmt.Fprintln(a.out, msgRestrictedAction)
		return common.ErrNotAuthenticated
	}

	movie, err := a.catalog.MovieDetails(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "failed to fetch movie", "movie", id, "error", err)
		fmt.Fprintln(a.out, msgFetchFailure)
		return err
	}

	if op == "add" {
		err = a.favorites.Add(ctx, movie.Favorite())
	} else {
		err = a.favorites.Toggle(ctx, movie.Favorite())
	}
	return a.reportFavoriteErr(err)
}

func (a *App) clearFavorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, msgRestrictedAction)
		return common.ErrNotAuthenticated
	}
	ok, err := confirm(a.reader, "Remover todos os favoritos?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.reportFavoriteErr(a.favorites.ClearAll(ctx))
}

func (a *App) reportFavoriteErr(err error) error {
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			fmt.Fprintln(a.out, msgRestrictedAction)
		} else {
			fmt.Fprintln(a.out, userMessage(err))
		}
		return err
	}
	fmt.Fprintln(a.out, "Favoritos atualizados.")
	return nil
}

func parseMovieID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing movie id", common.ErrValidation)
	}
	return strconv.ParseInt(args[0], 10, 64)
}
