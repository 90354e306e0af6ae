package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

type stubAuditService struct {
	events    []domain.AuthEvent
	lastLimit int
}

func (s *stubAuditService) Record(_ context.Context, _ ports.AuthEventInput) error {
	return nil
}

func (s *stubAuditService) Recent(_ context.Context, limit int) ([]domain.AuthEvent, error) {
	s.lastLimit = limit
	return s.events, nil
}

func TestAuditHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubAuditService{events: []domain.AuthEvent{
		{Email: "a@b.com", Action: domain.AuditActionLogin, Outcome: domain.AuditOutcomeSuccess},
		{Email: "c@d.com", Action: domain.AuditActionRegister, Outcome: domain.AuditOutcomeConflict},
	}}
	handler := NewAuditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/auth-events?limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastLimit != 10 {
		t.Fatalf("expected limit 10, got %d", stub.lastLimit)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

func TestAuditHandler_List_CapsLimit(t *testing.T) {
	e := echo.New()
	stub := &stubAuditService{}
	handler := NewAuditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/auth-events?limit=99999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastLimit != maxAuditLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxAuditLimit, stub.lastLimit)
	}
}

func TestAuditHandler_List_RejectsBadLimit(t *testing.T) {
	e := echo.New()
	handler := NewAuditHandler(&stubAuditService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/auth-events?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
