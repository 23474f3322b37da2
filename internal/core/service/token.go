package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/boardhub/board-api/internal/core/domain"
)

// DefaultTokenTTL bounds token validity when no TTL is configured.
const DefaultTokenTTL = time.Hour

// JWTTokenService issues and verifies HS256-signed tokens carrying the
// caller's identity claims. Verification is stateless: signature plus expiry,
// no server-side session store.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type identityClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs claims with issuedAt = now and expiresAt = now + TTL. Zero
// timestamps on the input are filled in; explicit ones (tests, replays of a
// known window) are honored.
func (s *JWTTokenService) Issue(claims domain.Claims) (string, error) {
	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.now().UTC()
	}
	expiresAt := claims.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(s.ttl)
	}

	payload := identityClaims{
		Email:    claims.Email,
		Username: claims.Username,
		Role:     string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify recomputes the signature over the payload (constant-time HMAC
// comparison inside golang-jwt) and checks expiry, returning the embedded
// claims on success.
func (s *JWTTokenService) Verify(token string) (*domain.Claims, error) {
	var payload identityClaims
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignature
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenSignature
	}

	claims := domain.Claims{
		UserID:   payload.Subject,
		Email:    payload.Email,
		Username: payload.Username,
		Role:     domain.Role(payload.Role),
	}
	if payload.IssuedAt != nil {
		claims.IssuedAt = payload.IssuedAt.Time
	}
	if payload.ExpiresAt != nil {
		claims.ExpiresAt = payload.ExpiresAt.Time
	}
	return &claims, nil
}
