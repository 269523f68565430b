package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return rec, resp
}

func TestHTTPErrorHandler_DomainErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrMalformedCredential, http.StatusUnauthorized},
		{domain.ErrSessionExpired, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrNoPlatforms, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec, resp := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if resp.Error == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_QuotaCarriesUsage(t *testing.T) {
	rec, resp := renderError(t, &domain.QuotaExceededError{Used: 4, Limit: 4})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if resp.Used == nil || *resp.Used != 4 || resp.Limit == nil || *resp.Limit != 4 {
		t.Fatalf("usage numbers missing: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("resolve session"), domain.ErrSessionExpired)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrapped error should still map, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	rec, resp := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "bad payload"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if resp.Error != "bad payload" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	rec, resp := renderError(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Error)
	}
}
