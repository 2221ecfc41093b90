// Package settings persists the auxiliary app toggles that live outside the
// three core stores: notifications and auto-sync.
package settings

import (
	"context"
	"encoding/json"
	"sync"

	"cinetrack/internal/logging"
	"cinetrack/internal/storage"
)

const (
	keyNotificationsEnabled = "@notifications_enabled"
	keyAutoSyncEnabled      = "@auto_sync_enabled"
)

// Service holds the toggle state with write-through persistence. Both
// toggles default to enabled.
type Service struct {
	repo   storage.Repository
	logger logging.Logger

	mu            sync.Mutex
	notifications bool
	autoSync      bool
}

func NewService(repo storage.Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger, notifications: true, autoSync: true}
}

// Bootstrap loads the persisted toggles, keeping defaults for absent keys.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadBool(ctx, keyNotificationsEnabled, &s.notifications); err != nil {
		return err
	}
	return s.loadBool(ctx, keyAutoSyncEnabled, &s.autoSync)
}

func (s *Service) loadBool(ctx context.Context, key string, dst *bool) error {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn(ctx, "discarding unreadable setting", "key", key, "error", err)
		return nil
	}
	*dst = v
	return nil
}

func (s *Service) Notifications() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

func (s *Service) AutoSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoSync
}

func (s *Service) SetNotifications(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setBool(ctx, keyNotificationsEnabled, enabled); err != nil {
		return err
	}
	s.notifications = enabled
	return nil
}

func (s *Service) SetAutoSync(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setBool(ctx, keyAutoSyncEnabled, enabled); err != nil {
		return err
	}
	s.autoSync = enabled
	return nil
}

func (s *Service) setBool(ctx context.Context, key string, v bool) error {
	raw, _ := json.Marshal(v)
	return s.repo.Set(ctx, key, raw)
}
