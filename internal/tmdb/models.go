package tmdb

import "cinetrack/internal/models"

// Genre is one movie genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is a catalog movie record. List endpoints fill the summary fields;
// the detail endpoint adds runtime and genres.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	Genres       []Genre `json:"genres"`
}

// Favorite projects the movie down to the fields kept in a favorite list.
func (m Movie) Favorite() models.FavoriteMovie {
	return models.FavoriteMovie{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
	}
}

// MovieList is one page of movie results.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// CastMember is one credited performance on a movie.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Credits is the cast listing for a movie.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

// Person is an actor record.
type Person struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Biography          string `json:"biography"`
	Birthday           string `json:"birthday"`
	PlaceOfBirth       string `json:"place_of_birth"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

// PersonCastCredit is one movie a person appeared in.
type PersonCastCredit struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Character   string  `json:"character"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// PersonCredits is a person's movie credit listing.
type PersonCredits struct {
	ID   int64              `json:"id"`
	Cast []PersonCastCredit `json:"cast"`
}
