package domain

import "time"

// Audit actions and outcomes recorded for authentication activity.
const (
	AuditActionRegister = "register"
	AuditActionLogin    = "login"
	AuditActionLogout   = "logout"

	AuditOutcomeSuccess      = "success"
	AuditOutcomeConflict     = "conflict"
	AuditOutcomeUnauthorized = "unauthorized"
	AuditOutcomeError        = "error"
)

// AuthEvent is one entry in the authentication audit trail.
type AuthEvent struct {
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	Outcome    string    `json:"outcome"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
