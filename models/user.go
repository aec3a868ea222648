package models

import "time"

// User is a session/identity record. Authentication is token-based: the
// token is an opaque bearer credential, and the record is alive while
// ExpiresAt lies in the future. There is at most one live user per
// username; an expired record is reactivated in place on re-registration
// instead of being replaced by a fresh row.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database, never exposed via JSON.
	UserID int64 `json:"-"`

	// Username is the unique user identifier and the tenant key for all
	// concept data. 3–50 characters after trimming.
	Username string `json:"username"`

	// Token is the opaque bearer credential. Rotated on every (re)issuance,
	// unique across all users. Excluded from JSON responses except through
	// the dedicated auth response DTO.
	Token string `json:"-"`

	// ExpiresAt bounds the session lifetime. The session is valid iff
	// now < ExpiresAt; every successful verification slides it forward.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Expired reports whether the session is no longer valid at the given
// instant.
func (u User) Expired(now time.Time) bool {
	return !u.ExpiresAt.After(now)
}
