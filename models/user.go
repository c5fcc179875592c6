package models

import "time"

// User represents an account of the remote replica. Its UserID is the owner
// id every note is scoped by.
type User struct {
	// UserID is the server-generated UUIDv7 of the account. It is used as
	// the JWT subject and as Note.OwnerID.
	UserID string `json:"user_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plain-text password on the way in and the
	// bcrypt hash at the persistence layer. It is never serialized back.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the locally persisted login of the client. At most one session
// exists per local database.
type Session struct {
	// OwnerID is the UserID returned by the server at login.
	OwnerID string `json:"owner_id"`

	// Login is the account login, kept for display.
	Login string `json:"login"`

	// Token is the bearer token used by the remote gateway.
	Token string `json:"token"`

	// CreatedAt is the moment the session was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
