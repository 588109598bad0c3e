package httpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"portfolio-site/internal/domain"
	authsvc "portfolio-site/internal/service/auth"
)

type stubAuthSvc struct {
	user      *domain.AdminUser
	signUpErr error
	signInErr error
	signedOut []string
}

func newStubAuth() *stubAuthSvc {
	return &stubAuthSvc{user: &domain.AdminUser{ID: "user-1", Email: "admin@example.com"}}
}

func (s *stubAuthSvc) SignUp(_ context.Context, email, _ string) (*domain.AdminUser, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return &domain.AdminUser{ID: "user-2", Email: email}, nil
}

func (s *stubAuthSvc) SignIn(_ context.Context, _, _ string) (*authsvc.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return &authsvc.Session{User: s.user, Token: adminToken, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubAuthSvc) SignOut(_ context.Context, token string) error {
	s.signedOut = append(s.signedOut, token)
	return nil
}

func (s *stubAuthSvc) CurrentUser(_ context.Context, token string) (*domain.AdminUser, error) {
	if token != adminToken {
		return nil, authsvc.ErrInvalidToken
	}
	return s.user, nil
}

func TestSignUpHandler_Created(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth())

	rec := do(router, http.MethodPost, "/auth/sign-up", `{"email":"new@example.com","password":"Abcdefg1"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"new@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignUpHandler_Disabled(t *testing.T) {
	authSvc := newStubAuth()
	authSvc.signUpErr = authsvc.ErrSignUpDisabled
	router := newTestRouter(t, newMemoryLinkRepo(), authSvc)

	rec := do(router, http.MethodPost, "/auth/sign-up", `{"email":"new@example.com","password":"Abcdefg1"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSignUpHandler_MissingFields(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth())

	rec := do(router, http.MethodPost, "/auth/sign-up", `{"email":"new@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSignInHandler_InvalidCredentials(t *testing.T) {
	authSvc := newStubAuth()
	authSvc.signInErr = authsvc.ErrInvalidCredentials
	router := newTestRouter(t, newMemoryLinkRepo(), authSvc)

	rec := do(router, http.MethodPost, "/auth/sign-in", `{"email":"admin@example.com","password":"badpass"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"invalid_credentials"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignInHandler_ReturnsToken(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth())

	rec := do(router, http.MethodPost, "/auth/sign-in", `{"email":"admin@example.com","password":"Abcdefg1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"access_token":"`+adminToken+`"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMeHandler_UnauthorizedWithoutToken(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth())

	rec := do(router, http.MethodGet, "/auth/me", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_Success(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth())

	rec := do(router, http.MethodGet, "/auth/me", "", asAdmin()...)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"admin@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestSignOutHandler(t *testing.T) {
	authSvc := newStubAuth()
	router := newTestRouter(t, newMemoryLinkRepo(), authSvc)

	rec := do(router, http.MethodPost, "/auth/sign-out", "", asAdmin()...)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(authSvc.signedOut) != 1 || authSvc.signedOut[0] != adminToken {
		t.Fatalf("expected sign-out with bearer token, got %v", authSvc.signedOut)
	}
}
