// Package favorites maintains the authenticated user's favorite-movie list.
// Lists are partitioned by user identifier so accounts sharing one device
// never see each other's favorites.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cinetrack/internal/common"
	"cinetrack/internal/logging"
	"cinetrack/internal/models"
	"cinetrack/internal/storage"
)

const keyPrefix = "@favorite_movies_"

// partitionKey is the storage key holding one user's favorite list.
func partitionKey(userID string) string {
	return keyPrefix + userID
}

// SessionSource is the identity store surface the favorites store depends
// on: an explicit subscription to session transitions.
type SessionSource interface {
	Subscribe(fn func(*models.Session))
}

// Service is the favorites store. The in-memory list always mirrors the
// active session's partition; while logged out it is empty no matter what is
// persisted.
type Service struct {
	repo   storage.Repository
	logger logging.Logger

	mu     sync.Mutex
	userID string // empty when unauthenticated
	movies []models.FavoriteMovie
}

// NewService constructs a favorites service and registers it with the
// identity store so the list reloads on every session transition.
func NewService(repo storage.Repository, sessions SessionSource, logger logging.Logger) *Service {
	s := &Service{repo: repo, logger: logger}
	sessions.Subscribe(s.onSessionChange)
	return s
}

// onSessionChange replaces the in-memory state with the new session's
// partition. Runs synchronously within the identity store's notification.
func (s *Service) onSessionChange(sess *models.Session) {
	ctx := context.Background()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess == nil {
		s.userID = ""
		s.movies = nil
		return
	}

	s.userID = sess.ID
	movies, err := loadPartition(ctx, s.repo, sess.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to load favorites", "user", sess.ID, "error", err)
		s.movies = nil
		return
	}
	s.movies = movies
	s.logger.Debug(ctx, "favorites reloaded", "user", sess.ID, "count", len(movies))
}

// List returns a copy of the current favorite list.
func (s *Service) List() []models.FavoriteMovie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FavoriteMovie(nil), s.movies...)
}

// IsFavorite reports membership of movieID in the in-memory list. Always
// false while unauthenticated; persisted data is never consulted for a
// logged-out state.
func (s *Service) IsFavorite(movieID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID != "" && s.contains(movieID)
}

// Add appends movie to the active user's list. Adding a movie that is
// already present succeeds without change.
func (s *Service) Add(ctx context.Context, movie models.FavoriteMovie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return common.ErrNotAuthenticated
	}
	if movie.ID == 0 {
		return fmt.Errorf("%w: movie id is required", common.ErrValidation)
	}
	if s.contains(movie.ID) {
		return nil
	}

	updated := append(append([]models.FavoriteMovie(nil), s.movies...), movie)
	if err := savePartition(ctx, s.repo, s.userID, updated); err != nil {
		return err
	}
	s.movies = updated
	s.logger.Debug(ctx, "favorite added", "user", s.userID, "movie", movie.ID)
	return nil
}

// Remove deletes movieID from the active user's list.
func (s *Service) Remove(ctx context.Context, movieID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, movieID)
}

// Toggle adds the movie when absent and removes it when present.
func (s *Service) Toggle(ctx context.Context, movie models.FavoriteMovie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return common.ErrNotAuthenticated
	}
	if movie.ID == 0 {
		return fmt.Errorf("%w: movie id is required", common.ErrValidation)
	}
	if s.contains(movie.ID) {
		return s.removeLocked(ctx, movie.ID)
	}

	updated := append(append([]models.FavoriteMovie(nil), s.movies...), movie)
	if err := savePartition(ctx, s.repo, s.userID, updated); err != nil {
		return err
	}
	s.movies = updated
	return nil
}

// ClearAll deletes the active user's entire partition.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return common.ErrNotAuthenticated
	}
	if err := s.repo.Delete(ctx, partitionKey(s.userID)); err != nil {
		return err
	}
	s.movies = nil
	s.logger.Info(ctx, "favorites cleared", "user", s.userID)
	return nil
}

func (s *Service) removeLocked(ctx context.Context, movieID int64) error {
	if s.userID == "" {
		return common.ErrNotAuthenticated
	}
	if !s.contains(movieID) {
		return fmt.Errorf("%w: movie %d is not a favorite", common.ErrNotFound, movieID)
	}

	updated := make([]models.FavoriteMovie, 0, len(s.movies)-1)
	for _, m := range s.movies {
		if m.ID != movieID {
			updated = append(updated, m)
		}
	}
	if err := savePartition(ctx, s.repo, s.userID, updated); err != nil {
		return err
	}
	s.movies = updated
	s.logger.Debug(ctx, "favorite removed", "user", s.userID, "movie", movieID)
	return nil
}

func (s *Service) contains(movieID int64) bool {
	for _, m := range s.movies {
		if m.ID == movieID {
			return true
		}
	}
	return false
}

func loadPartition(ctx context.Context, repo storage.Repository, userID string) ([]models.FavoriteMovie, error) {
	raw, err := repo.Get(ctx, partitionKey(userID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var movies []models.FavoriteMovie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return movies, nil
}

func savePartition(ctx context.Context, repo storage.Repository, userID string, movies []models.FavoriteMovie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	return repo.Set(ctx, partitionKey(userID), raw)
}
