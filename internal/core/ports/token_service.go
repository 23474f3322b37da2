package ports

import "github.com/boardhub/board-api/internal/core/domain"

// TokenService issues and verifies stateless signed identity tokens. Validity
// is determined purely by signature and expiry; no issued token is stored
// server-side, which also means none can be revoked before it expires.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns the embedded claims, or one of domain.ErrTokenExpired,
	// domain.ErrTokenSignature, domain.ErrTokenMalformed.
	Verify(token string) (*domain.Claims, error)
}
