// Package tmdb is a read-only HTTP client for The Movie Database API. It
// deliberately carries no retry, caching or backoff; callers surface
// failures directly.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the TMDB v3 API endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// ImageBaseURL prefixes poster and profile paths.
	ImageBaseURL = "https://image.tmdb.org/t/p/w500"

	// DefaultLanguage is the locale the app was written for.
	DefaultLanguage = "pt-BR"
)

// Client is an HTTP client for the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLanguage overrides the response locale.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a TMDB API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		language: DefaultLanguage,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NowPlaying fetches the first page of movies currently in theaters.
func (c *Client) NowPlaying(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "/movie/now_playing")
}

// Popular fetches the first page of popular movies.
func (c *Client) Popular(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "/movie/popular")
}

// TopRated fetches the first page of top-rated movies.
func (c *Client) TopRated(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "/movie/top_rated")
}

// SearchMovies runs a free-text movie search.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	var list MovieList
	if err := c.get(ctx, "/search/movie", params, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// MovieDetails fetches one movie by its numeric identifier.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*Movie, error) {
	var m Movie
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), url.Values{}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MovieCredits fetches the cast listing for a movie.
func (c *Client) MovieCredits(ctx context.Context, id int64) (*Credits, error) {
	var cr Credits
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10)+"/credits", url.Values{}, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// PersonDetails fetches one actor by identifier.
func (c *Client) PersonDetails(ctx context.Context, id int64) (*Person, error) {
	var p Person
	if err := c.get(ctx, "/person/"+strconv.FormatInt(id, 10), url.Values{}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PersonMovieCredits fetches an actor's movie credits.
func (c *Client) PersonMovieCredits(ctx context.Context, id int64) (*PersonCredits, error) {
	var cr PersonCredits
	if err := c.get(ctx, "/person/"+strconv.FormatInt(id, 10)+"/movie_credits", url.Values{}, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// ImageURL expands a poster or profile path to a full URL. Empty paths stay
// empty.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + path
}

func (c *Client) movieList(ctx context.Context, path string) ([]Movie, error) {
	params := url.Values{}
	params.Set("page", "1")

	var list MovieList
	if err := c.get(ctx, path, params, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
