package models

// FavoriteMovie is the minimal projection of a catalog movie kept in a
// user's favorite list. Field names follow the remote catalog's JSON so a
// fetched movie can be stored without translation.
type FavoriteMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}
