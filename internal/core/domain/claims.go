package domain

import "time"

// Claims is the identity payload embedded in a token. It snapshots the user's
// role at issuance time; a later role change does not affect tokens already
// in flight, they simply age out at ExpiresAt.
type Claims struct {
	UserID    string
	Email     string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the authenticated caller resolved from verified claims and
// threaded through request handling.
type Identity struct {
	UserID   string
	Email    string
	Username string
	Role     Role
}

// Identity derives the request identity from verified claims.
func (c Claims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Email:    c.Email,
		Username: c.Username,
		Role:     c.Role,
	}
}
