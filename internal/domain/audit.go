package domain

import "time"

// AuditLog records one write operation against the ledger.
type AuditLog struct {
	ID           string
	Action       string
	MovementID   string
	BeforeState  map[string]any
	AfterState   map[string]any
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

// Audit actions recorded by the balance engine.
const (
	AuditMovementInsert    = "movement.insert"
	AuditMovementUpdate    = "movement.update"
	AuditMovementDelete    = "movement.delete"
	AuditLedgerRecalculate = "ledger.recalculate"
)

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	Action     string
	MovementID string
	Limit      int
	Offset     int
}
