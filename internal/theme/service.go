package theme

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"cinetrack/internal/logging"
	"cinetrack/internal/storage"
)

const (
	keyThemePreference = "@theme_preference"
	keyUseSystemTheme  = "@use_system_theme"
)

// Service is the theme store. Its state machine has four states over two
// fields: {System,Pinned} x {Light,Dark}. While system-following is on, the
// resolved palette tracks the AppearanceSource; pinning disables following.
type Service struct {
	repo   storage.Repository
	source AppearanceSource
	logger logging.Logger

	mu           sync.Mutex
	current      Theme
	followSystem bool
}

// NewService constructs a theme store over the given repository and device
// appearance source.
func NewService(repo storage.Repository, source AppearanceSource, logger logging.Logger) *Service {
	return &Service{
		repo:         repo,
		source:       source,
		logger:       logger,
		current:      Light,
		followSystem: true,
	}
}

// Current returns the resolved theme.
func (s *Service) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsDark reports whether the resolved palette is the dark variant.
func (s *Service) IsDark() bool {
	return s.Current().Name == Dark.Name
}

// FollowsSystem reports whether the palette tracks the device appearance.
func (s *Service) FollowsSystem() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.followSystem
}

// Bootstrap loads the persisted preference. A stored palette without a
// system-following flag is a legacy record and means a pinned choice.
func (s *Service) Bootstrap(ctx context.Context) error {
	storedTheme, err := s.repo.Get(ctx, keyThemePreference)
	if err != nil {
		return err
	}
	storedUseSystem, err := s.repo.Get(ctx, keyUseSystemTheme)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case storedUseSystem != nil:
		var follow bool
		if err := json.Unmarshal(storedUseSystem, &follow); err != nil {
			s.logger.Warn(ctx, "discarding unreadable system-theme flag", "error", err)
			follow = true
		}
		s.followSystem = follow
		if follow {
			s.current = s.resolveSystem()
		} else if storedTheme != nil {
			s.current = themeByName(string(storedTheme))
		}
	case storedTheme != nil:
		s.followSystem = false
		s.current = themeByName(string(storedTheme))
	default:
		s.followSystem = true
		s.current = s.resolveSystem()
	}
	return nil
}

// SetLight pins the light palette and disables system-following.
func (s *Service) SetLight(ctx context.Context) error {
	return s.pin(ctx, Light)
}

// SetDark pins the dark palette and disables system-following.
func (s *Service) SetDark(ctx context.Context) error {
	return s.pin(ctx, Dark)
}

func (s *Service) pin(ctx context.Context, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, keyThemePreference, []byte(t.Name)); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyUseSystemTheme, mustMarshalBool(false)); err != nil {
		return err
	}
	s.current = t
	s.followSystem = false
	s.logger.Debug(ctx, "theme pinned", "palette", t.Name)
	return nil
}

// SetFollowSystem toggles system-following. Enabling resolves the palette
// from the current device report; disabling pins the currently resolved
// palette.
func (s *Service) SetFollowSystem(ctx context.Context, follow bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, keyUseSystemTheme, mustMarshalBool(follow)); err != nil {
		return err
	}
	s.followSystem = follow
	if follow {
		s.current = s.resolveSystem()
	}
	return nil
}

// Refresh applies the device's current appearance when system-following is
// enabled. It is the entry point for device-appearance-changed
// notifications.
func (s *Service) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.followSystem {
		return
	}
	resolved := s.resolveSystem()
	if resolved.Name != s.current.Name {
		s.current = resolved
	}
}

// Watch polls the appearance source until ctx is done, re-resolving the
// palette on device changes while system-following is enabled.
func (s *Service) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Refresh()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) resolveSystem() Theme {
	if s.source.Current() == AppearanceDark {
		return Dark
	}
	return Light
}

func mustMarshalBool(v bool) []byte {
	raw, _ := json.Marshal(v)
	return raw
}
