package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardhub/board-api/internal/api/metrics"
	"github.com/boardhub/board-api/internal/api/middleware"
	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

// AuthHandler exposes signup and signin.
type AuthHandler struct {
	authService ports.AuthService
	// tokenTTLSeconds bounds the signin cookie's lifetime to the token's.
	tokenTTLSeconds int
}

func NewAuthHandler(authService ports.AuthService, tokenTTLSeconds int) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTLSeconds: tokenTTLSeconds}
}

type signUpRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Password string `json:"password" validate:"required,max=72"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	// Role is accepted for wire compatibility and ignored; signup can never
	// grant privilege.
	Role string `json:"role"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// SignUp creates a new account.
//
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details (role is ignored)"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// SignIn authenticates an account and issues a token, delivered in the
// response body, the Authorization header, and an HttpOnly cookie whose
// lifetime matches the token TTL.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	c.Response().Header().Set("Authorization", "Bearer "+token)
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.tokenTTLSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
