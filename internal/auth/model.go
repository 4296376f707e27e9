package auth

import "time"

// User is the domain entity.
type User struct {
	ID       string
	Email    string
	Password string
}

// Session is the server-side record of a signed-in user. The row in the
// sessions table is the single source of truth: a token whose session row
// is gone is expired no matter what the token itself says.
type Session struct {
	ID        string
	UserID    string
	Email     string
	ExpiresAt time.Time
}
