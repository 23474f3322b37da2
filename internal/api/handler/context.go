package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardhub/board-api/internal/api/middleware"
	"github.com/boardhub/board-api/internal/core/domain"
)

// ctxIdentity extracts the identity the access gate placed in the context.
// Its absence means the route was wired without the Auth middleware, which is
// a misconfiguration surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
