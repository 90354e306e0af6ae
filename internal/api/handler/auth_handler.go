package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/api/metrics"
	"github.com/stayora/booking-platform/internal/api/middleware"
	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

// AuthHandler exposes the registration, login, current-identity, and logout
// endpoints.
type AuthHandler struct {
	authService ports.AuthService
	denylist    ports.TokenDenylist
	audit       ports.AuditSink
}

// NewAuthHandler creates an AuthHandler. denylist and audit may be nil; the
// corresponding features degrade to no-ops.
func NewAuthHandler(authService ports.AuthService, denylist ports.TokenDenylist, audit ports.AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, denylist: denylist, audit: audit}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string             `json:"token"`
	User  *domain.PublicUser `json:"user"`
}

type meResponse struct {
	User    *domain.PublicUser `json:"user"`
	Message string             `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account and logs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role.Wire()).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user.Public()})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user.Public()})
}

// Me returns the authenticated user's public profile. Authentication itself
// happens in the middleware; by the time this runs the user is trusted.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User:    user.Public(),
		Message: "user information retrieved successfully",
	})
}

// Logout revokes the presented token until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if h.denylist != nil {
		token, _ := c.Get(middleware.ContextTokenKey).(string)
		expiresAt, _ := c.Get(middleware.ContextTokenExpKey).(time.Time)
		if token != "" && !expiresAt.IsZero() {
			if err := h.denylist.Revoke(c.Request().Context(), token, expiresAt); err != nil {
				return err
			}
		}
	}

	if h.audit != nil {
		h.audit.Enqueue(ports.AuthEventInput{
			Email:      user.Email,
			Action:     domain.AuditActionLogout,
			Outcome:    domain.AuditOutcomeSuccess,
			RemoteAddr: c.RealIP(),
			Timestamp:  time.Now().UTC(),
		})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}
