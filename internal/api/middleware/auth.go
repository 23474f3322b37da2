package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/api/metrics"
	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

// identityKey is the context key the verified identity is stored under.
const identityKey = "identity"

// TokenCookieName is the cookie the gate falls back to when no Authorization
// header is present. The signin handler sets it.
const TokenCookieName = "access_token"

// unauthenticatedMessage is the single client-facing message for every
// authentication failure. The specific reason (missing, expired, bad
// signature, malformed) is logged and counted server-side only.
const unauthenticatedMessage = "authentication required"

// Auth is the access gate applied to every protected route: it extracts the
// token from its carrier, verifies it and resolves the caller identity into
// the request context. Routes satisfiable anonymously (signup, signin,
// health) simply do not mount it.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, unauthenticatedMessage)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				log.Warn().Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("token verification failed")
				return echo.NewHTTPError(http.StatusUnauthorized, unauthenticatedMessage)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(identityKey, claims.Identity())
			return next(c)
		}
	}
}

// IdentityFrom returns the identity placed in the context by Auth. The second
// return is false when the gate did not run or rejected the request.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// SetIdentity injects an identity directly. Test helper.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the access-token cookie.
func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
