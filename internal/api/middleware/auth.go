package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayora/booking-platform/internal/api/metrics"
	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserKey     = "user"
	ContextRoleKey     = "role"
	ContextTokenKey    = "token"
	ContextTokenExpKey = "token_exp"
)

// Auth validates the bearer token and loads the authenticated user into the
// request context. Verification fails closed: a missing header, wrong
// signing method, bad signature, expired token, revoked token, or a token
// for an account that no longer exists all yield 401 — never a partially
// trusted identity. denylist may be nil, disabling revocation checks.
func Auth(jwtSecret string, users ports.UserRepository, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			raw := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
				if err != nil {
					log.Error().Err(err).Msg("denylist check failed")
					return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
				if revoked {
					metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			email, _ := claims["email"].(string)
			if email == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				log.Error().Err(err).Str("email", email).Msg("user lookup failed during authentication")
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("accepted").Inc()

			c.Set(ContextUserKey, user)
			c.Set(ContextRoleKey, user.Role.Wire())
			c.Set(ContextTokenKey, raw)
			if exp, ok := claims["exp"].(float64); ok {
				c.Set(ContextTokenExpKey, time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}
