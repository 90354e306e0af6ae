package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/api/middleware"
	"github.com/stayora/booking-platform/internal/core/domain"
)

// currentUser extracts the user loaded by the Auth middleware. Its absence
// means the route was wired without the middleware — fail closed with 401
// rather than serving an unauthenticated request.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
