package domain

import "errors"

var (
	// Movement errors
	ErrMovementNotFound    = errors.New("movement not found")
	ErrInvalidMovementType = errors.New("unknown movement type")
	ErrInvalidAmount       = errors.New("amount is not a valid number")
	ErrAmountTooLarge      = errors.New("amount exceeds maximum allowed")
	ErrConceptEmpty        = errors.New("concept cannot be empty")
	ErrConceptTooLong      = errors.New("concept exceeds maximum length")

	// Ledger errors
	ErrInvalidDateRange   = errors.New("period end precedes period start")
	ErrInconsistentLedger = errors.New("running balances are inconsistent")
)
