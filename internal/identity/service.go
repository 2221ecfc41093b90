// Package identity manages the registered-user roster and the single active
// session. The roster entry is the source of truth for a user's profile; the
// persisted session is always a projection of it.
package identity

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinetrack/internal/common"
	"cinetrack/internal/cryptox"
	"cinetrack/internal/logging"
	"cinetrack/internal/models"
	"cinetrack/internal/storage"
)

const (
	keyUserData        = "@user_data"
	keyRegisteredUsers = "@registered_users"
)

// Default account seeded into an empty roster so the app is usable without
// registering first.
const (
	DefaultUserName     = "Usuário Teste"
	DefaultUserEmail    = "usuario@teste.com"
	DefaultUserPassword = "123456"
)

// Subscriber receives the new active session after every session transition
// (bootstrap, login, logout, profile update). A nil session means logged out.
type Subscriber func(*models.Session)

// ProfileUpdate carries the profile fields to merge; nil fields are left
// unchanged.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}

// Service is the identity store. All mutations persist before updating the
// in-memory session, so storage stays the source of truth across crashes.
type Service struct {
	repo   storage.Repository
	logger logging.Logger

	mu      sync.Mutex
	session *models.Session
	subs    []Subscriber
}

// NewService constructs an identity service over the given repository.
func NewService(repo storage.Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Subscribe registers fn to be called on every session transition.
func (s *Service) Subscribe(fn func(*models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Session returns a copy of the active session, or nil when logged out.
func (s *Service) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	c := *s.session
	return &c
}

// IsAuthenticated reports whether a session is active.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// Bootstrap seeds the default account into an empty roster, then rehydrates
// the persisted session without re-validating credentials (trust-on-read).
// When the roster still holds the session's user, the session is re-projected
// from the roster entry so a stale copy never wins.
func (s *Service) Bootstrap(ctx context.Context) error {
	users, err := loadRoster(ctx, s.repo)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		u, err := newUser(DefaultUserName, DefaultUserEmail, DefaultUserPassword)
		if err != nil {
			return err
		}
		users = []models.User{u}
		if err := saveRoster(ctx, s.repo, users); err != nil {
			return err
		}
		s.logger.Info(ctx, "seeded default account", "email", DefaultUserEmail)
	}

	raw, err := s.repo.Get(ctx, keyUserData)
	if err != nil {
		return err
	}
	var active *models.Session
	if raw != nil {
		var sess models.Session
		if err := json.Unmarshal(raw, &sess); err != nil {
			s.logger.Warn(ctx, "discarding unreadable session record", "error", err)
		} else {
			active = &sess
			for i := range users {
				if users[i].ID == sess.ID {
					proj := users[i].Session()
					active = &proj
					break
				}
			}
		}
	}

	s.mu.Lock()
	s.session = active
	s.mu.Unlock()
	s.notify(active)
	return nil
}

// Register appends a new user to the roster. The new user is not logged in.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: name, email and password are required", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadRoster(ctx, s.repo)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			return common.ErrDuplicateEmail
		}
	}

	u, err := newUser(name, email, password)
	if err != nil {
		return err
	}
	users = append(users, u)
	if err := saveRoster(ctx, s.repo, users); err != nil {
		return err
	}
	s.logger.Info(ctx, "registered user", "id", u.ID, "email", email)
	return nil
}

// Login verifies the credentials against the roster, persists the projected
// session and activates it.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	s.mu.Lock()
	users, err := loadRoster(ctx, s.repo)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	var match *models.User
	for i := range users {
		if users[i].Email == email {
			match = &users[i]
			break
		}
	}
	if match == nil || !verifyUserPassword(match, password) {
		s.mu.Unlock()
		return common.ErrInvalidCredentials
	}

	sess := match.Session()
	if err := saveSession(ctx, s.repo, &sess); err != nil {
		s.mu.Unlock()
		return err
	}
	s.session = &sess
	s.mu.Unlock()

	s.logger.Info(ctx, "user logged in", "id", sess.ID)
	s.notify(&sess)
	return nil
}

// Logout clears the persisted session record and the in-memory session.
// Calling it while logged out succeeds trivially.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	if err := s.repo.Delete(ctx, keyUserData); err != nil {
		s.mu.Unlock()
		return err
	}
	wasActive := s.session != nil
	s.session = nil
	s.mu.Unlock()

	if wasActive {
		s.logger.Info(ctx, "user logged out")
		s.notify(nil)
	}
	return nil
}

// UpdateProfile merges the given fields into the roster entry matching the
// active session and re-projects the session from it. Both records are
// written in one transaction.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return common.ErrNotAuthenticated
	}
	id := s.session.ID

	var sess models.Session
	err := s.repo.InTx(ctx, func(tx storage.Repository) error {
		users, err := loadRoster(ctx, tx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range users {
			if users[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: roster entry for active session", common.ErrNotFound)
		}
		u := &users[idx]
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.ProfilePicture != nil {
			u.ProfilePicture = *upd.ProfilePicture
		}
		if err := saveRoster(ctx, tx, users); err != nil {
			return err
		}
		sess = u.Session()
		return saveSession(ctx, tx, &sess)
	})
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.session = &sess
	s.mu.Unlock()

	s.logger.Info(ctx, "profile updated", "id", sess.ID)
	s.notify(&sess)
	return nil
}

// UpdateProfilePicture replaces only the profile image reference.
func (s *Service) UpdateProfilePicture(ctx context.Context, imageRef string) error {
	return s.UpdateProfile(ctx, ProfileUpdate{ProfilePicture: &imageRef})
}

// notify fans the session out to subscribers. Each subscriber gets its own
// copy. Must not be called with the mutex held.
func (s *Service) notify(sess *models.Session) {
	s.mu.Lock()
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		if sess == nil {
			fn(nil)
			continue
		}
		c := *sess
		fn(&c)
	}
}

func newUser(name, email, password string) (models.User, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate salt: %w", err)
	}
	verifier := cryptox.DeriveVerifier([]byte(password), salt)
	return models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordSalt: hex.EncodeToString(salt),
		PasswordHash: hex.EncodeToString(verifier),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func verifyUserPassword(u *models.User, password string) bool {
	salt, err := hex.DecodeString(u.PasswordSalt)
	if err != nil {
		return false
	}
	verifier, err := hex.DecodeString(u.PasswordHash)
	if err != nil {
		return false
	}
	return cryptox.VerifyPassword([]byte(password), salt, verifier)
}

func loadRoster(ctx context.Context, repo storage.Repository) ([]models.User, error) {
	raw, err := repo.Get(ctx, keyRegisteredUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return users, nil
}

func saveRoster(ctx context.Context, repo storage.Repository, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	return repo.Set(ctx, keyRegisteredUsers, raw)
}

func saveSession(ctx context.Context, repo storage.Repository, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return repo.Set(ctx, keyUserData, raw)
}
