package cli

import (
	"context"
	"fmt"
	"strings"

	"cinetrack/internal/tmdb"
)

const railSize = 5

// Home prints the three landing rails: now playing, popular and top rated.
func (a *App) Home(ctx context.Context) error {
	sections := []struct {
		title string
		fetch func(context.Context) ([]tmdb.Movie, error)
	}{
		{"Em cartaz", a.catalog.NowPlaying},
		{"Populares", a.catalog.Popular},
		{"Mais bem avaliados", a.catalog.TopRated},
	}

	for _, sec := range sections {
		movies, err := sec.fetch(ctx)
		if err != nil {
			a.logger.Error(ctx, "failed to fetch home rail", "rail", sec.title, "error", err)
			fmt.Fprintln(a.out, msgFetchFailure)
			return err
		}
		fmt.Fprintf(a.out, "\n== %s ==\n", sec.title)
		a.printMovies(movies, railSize)
	}
	return nil
}

// Search runs a free-text movie search.
func (a *App) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(a.out, "Uso: search <texto>")
		return nil
	}
	movies, err := a.catalog.SearchMovies(ctx, query)
	if err != nil {
		a.logger.Error(ctx, "search failed", "query", query, "error", err)
		fmt.Fprintln(a.out, msgFetchFailure)
		return err
	}
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "Nenhum resultado.")
		return nil
	}
	a.printMovies(movies, 20)
	return nil
}

// Movie prints one movie's details and top billed cast.
func (a *App) Movie(ctx context.Context, id int64) error {
	movie, err := a.catalog.MovieDetails(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "failed to fetch movie", "movie", id, "error", err)
		fmt.Fprintln(a.out, msgFetchFailure)
		return err
	}

	fmt.Fprintf(a.out, "\n%s (%s)\n", movie.Title, movie.ReleaseDate)
	fmt.Fprintf(a.out, "Nota: %.1f (%d votos)\n", movie.VoteAverage, movie.VoteCount)
	if movie.Runtime > 0 {
		fmt.Fprintf(a.out, "Duração: %d min\n", movie.Runtime)
	}
	if len(movie.Genres) > 0 {
		names := make([]string, len(movie.Genres))
		for i, g := range movie.Genres {
			names[i] = g.Name
		}
		fmt.Fprintf(a.out, "Gêneros: %s\n", strings.Join(names, ", "))
	}
	if movie.Overview != "" {
		fmt.Fprintf(a.out, "\n%s\n", movie.Overview)
	}
	if p := tmdb.ImageURL(movie.PosterPath); p != "" {
		fmt.Fprintf(a.out, "Pôster: %s\n", p)
	}
	if a.favorites.IsFavorite(movie.ID) {
		fmt.Fprintln(a.out, "♥ Nos seus favoritos")
	}

	credits, err := a.catalog.MovieCredits(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "failed to fetch credits", "movie", id, "error", err)
		return nil
	}
	if len(credits.Cast) > 0 {
		fmt.Fprintln(a.out, "\nElenco principal:")
		for i, c := range credits.Cast {
			if i == 8 {
				break
			}
			fmt.Fprintf(a.out, "%8d  %-30s  %s\n", c.ID, c.Name, c.Character)
		}
	}
	return nil
}

// Actor prints one actor's details and filmography.
func (a *App) Actor(ctx context.Context, id int64) error {
	person, err := a.catalog.PersonDetails(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "failed to fetch actor", "actor", id, "error", err)
		fmt.Fprintln(a.out, msgFetchFailure)
		return err
	}

	fmt.Fprintf(a.out, "\n%s\n", person.Name)
	if person.Birthday != "" {
		fmt.Fprintf(a.out, "Nascimento: %s", person.Birthday)
		if person.PlaceOfBirth != "" {
			fmt.Fprintf(a.out, " — %s", person.PlaceOfBirth)
		}
		fmt.Fprintln(a.out)
	}
	if person.Biography != "" {
		fmt.Fprintf(a.out, "\n%s\n", person.Biography)
	}

	credits, err := a.catalog.PersonMovieCredits(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "failed to fetch filmography", "actor", id, "error", err)
		return nil
	}
	if len(credits.Cast) > 0 {
		fmt.Fprintln(a.out, "\nFilmografia:")
		for i, c := range credits.Cast {
			if i == 10 {
				break
			}
			fmt.Fprintf(a.out, "%8d  %-40s  %s\n", c.ID, c.Title, c.Character)
		}
	}
	return nil
}

func (a *App) printMovies(movies []tmdb.Movie, limit int) {
	for i, m := range movies {
		if i == limit {
			break
		}
		fav := "  "
		if a.favorites.IsFavorite(m.ID) {
			fav = "♥ "
		}
		fmt.Fprintf(a.out, "%s%8d  %-40s  %.1f  %s\n", fav, m.ID, m.Title, m.VoteAverage, m.ReleaseDate)
	}
}
