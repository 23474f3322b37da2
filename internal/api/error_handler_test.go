package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
)

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{fmt.Errorf("title missing: %w", domain.ErrInvalidInput), http.StatusBadRequest, ""},
		{domain.ErrEmailExists, http.StatusConflict, "email already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "authentication required"},
		{domain.ErrTokenSignature, http.StatusUnauthorized, "authentication required"},
		{domain.ErrTokenMalformed, http.StatusUnauthorized, "authentication required"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrArticleNotFound, http.StatusNotFound, "article not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewHTTPErrorHandler(zerolog.Nop())
		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if tc.message != "" && resp["error"] != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp["error"])
		}
	}
}

func TestErrorHandler_TokenFailuresCollapseToOneMessage(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	messages := make(map[string]struct{})
	for _, err := range []error{domain.ErrTokenExpired, domain.ErrTokenSignature, domain.ErrTokenMalformed} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler(err, e.NewContext(req, rec))

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		messages[resp["error"]] = struct{}{}
	}
	if len(messages) != 1 {
		t.Fatalf("all token failures must share one client-facing message, got %v", messages)
	}
}

func TestErrorHandler_InternalErrorHidesDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errors.New("dial tcp 10.0.0.3:27017: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("internal detail leaked to client: %q", resp["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
