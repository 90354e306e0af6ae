package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubDenylist struct {
	revoked map[string]time.Time
}

func (d *stubDenylist) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	if d.revoked == nil {
		d.revoked = make(map[string]time.Time)
	}
	d.revoked[token] = expiresAt
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := d.revoked[token]
	return ok, nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
			if in.Email != "a@b.com" || in.FirstName != "A" || in.LastName != "B" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "signed-token", &domain.User{
				ID:           "u1",
				Email:        in.Email,
				PasswordHash: "hash",
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				Role:         domain.RoleCustomer,
			}, nil
		},
	}
	handler := NewAuthHandler(stub, nil, nil)

	body := strings.NewReader(`{"email":"a@b.com","password":"longenough1","first_name":"A","last_name":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@b.com" || user["role"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, found := user["password_hash"]; found {
		t.Fatalf("password hash leaked into response")
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("hash material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ErrorsPropagateToCentralHandler(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"a@b.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@b.com" || password != "longenough1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub, nil, nil)

	body := strings.NewReader(`{"email":"a@b.com","password":"longenough1"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, _ := resp["user"].(map[string]any)
	if user["role"] != "admin" {
		t.Fatalf("unexpected role: %+v", user)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"x@y.com","password":"nope-nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{
		ID:        "u1",
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Role:      domain.RoleBusinessOwner,
	})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response")
	}
	user, _ := resp["user"].(map[string]any)
	if user["role"] != "business_owner" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Me_WithoutMiddlewareIs401(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	e := echo.New()
	denylist := &stubDenylist{}
	handler := NewAuthHandler(&stubAuthService{}, denylist, nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleCustomer})
	c.Set("token", "the-raw-token")
	c.Set("token_exp", time.Now().Add(time.Hour))

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked, _ := denylist.IsRevoked(context.Background(), "the-raw-token"); !revoked {
		t.Fatalf("expected token to be revoked")
	}
}
