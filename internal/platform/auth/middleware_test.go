package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func createTestToken(t *testing.T, issuer *TokenIssuer, userID, email string) string {
	t.Helper()
	tokenStr, err := issuer.Issue(userID, email)
	if err != nil {
		t.Fatalf("failed to create test token: %v", err)
	}
	return tokenStr
}

func TestMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware(NewTokenIssuer(testSecret))
	handlerCalled := false
	handler := mw(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
	if handlerCalled {
		t.Error("handler should not have been called")
	}
}

func TestMiddleware_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "Token abc123"},
		{"missing token", "Bearer"},
		{"empty value", "Bearer "},
		{"basic auth", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
			req.Header.Set(echo.HeaderAuthorization, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Middleware(NewTokenIssuer(testSecret))
			handler := mw(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %T", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	tokenStr := createTestToken(t, issuer, "user-123", "jane@example.com")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware(issuer)
	handlerCalled := false
	handler := mw(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Error("handler should have been called")
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	expired := NewTokenIssuer(testSecret)
	expired.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
	tokenStr := createTestToken(t, expired, "user-123", "jane@example.com")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware(NewTokenIssuer(testSecret))
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
	if httpErr.Message != "Token expired" {
		t.Errorf("expected message %q, got %v", "Token expired", httpErr.Message)
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.real.token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware(NewTokenIssuer(testSecret))
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
	if httpErr.Message != "Invalid token" {
		t.Errorf("expected message %q, got %v", "Invalid token", httpErr.Message)
	}
}

func TestMiddleware_ClaimsExtraction(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	tokenStr := createTestToken(t, issuer, "user-456", "omar@example.com")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware(issuer)
	handler := mw(func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := UserIDFromContext(ctx); got != "user-456" {
			t.Errorf("expected user ID user-456, got %q", got)
		}
		if got := UserEmailFromContext(ctx); got != "omar@example.com" {
			t.Errorf("expected email omar@example.com, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_SkipsPublicPaths(t *testing.T) {
	for _, path := range []string{"/health", "/api/auth/register", "/api/auth/login"} {
		t.Run(path, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, path, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath(path)

			mw := Middleware(NewTokenIssuer(testSecret))
			handlerCalled := false
			handler := mw(func(c echo.Context) error {
				handlerCalled = true
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !handlerCalled {
				t.Error("handler should have been called on public path")
			}
		})
	}
}

func TestUserIDFromContext_Unset(t *testing.T) {
	ctx := context.Background()

	if got := UserIDFromContext(ctx); got != "" {
		t.Errorf("expected empty user ID, got %q", got)
	}
	if got := UserEmailFromContext(ctx); got != "" {
		t.Errorf("expected empty email, got %q", got)
	}
}
