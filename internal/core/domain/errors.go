package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailExists is returned when a signup targets an email that is
	// already registered.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is the single failure returned for any signin
	// mismatch. A missing account and a wrong password are intentionally
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated covers a missing, expired, malformed or forged token.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when an authenticated identity lacks the role
	// or ownership an operation requires.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrArticleNotFound = errors.New("article not found")
)

// Token verification failures carry their specific reason for server-side
// logging but all unwrap to ErrUnauthenticated, so the HTTP layer collapses
// them into one generic 401.
var (
	ErrTokenExpired   = fmt.Errorf("token expired: %w", ErrUnauthenticated)
	ErrTokenSignature = fmt.Errorf("invalid token signature: %w", ErrUnauthenticated)
	ErrTokenMalformed = fmt.Errorf("malformed token: %w", ErrUnauthenticated)
)
