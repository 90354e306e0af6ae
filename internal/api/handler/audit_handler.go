package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

const maxAuditLimit = 500

// AuditHandler serves the admin-only authentication audit listing.
type AuditHandler struct {
	auditService ports.AuditService
}

func NewAuditHandler(auditService ports.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

type auditListResponse struct {
	Events []domain.AuthEvent `json:"events"`
	Count  int                `json:"count"`
}

// List handles GET /admin/auth-events — newest events first.
//
// @Summary      List recent authentication events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of events (default 50, cap 500)"
// @Success      200    {object}  auditListResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /admin/auth-events [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	events, err := h.auditService.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditListResponse{Events: events, Count: len(events)})
}
