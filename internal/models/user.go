// Package models holds the persisted data shapes shared by the state stores.
package models

import "time"

// User is one registered account in the roster. The password itself is never
// stored; Salt/Verifier carry the argon2id-derived verifier pair instead.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordSalt   string    `json:"passwordSalt"`
	PasswordHash   string    `json:"passwordHash"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session is the currently authenticated user: a projection of User without
// the credential fields.
type Session struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session projects the user into a Session. The roster entry stays the
// single source of truth; sessions are always re-derived from it.
func (u *User) Session() Session {
	return Session{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
