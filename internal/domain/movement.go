package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a movement as income or expense. The empty
// value is legal and means the sign of the amount decides.
type MovementType string

const (
	TypeUnspecified MovementType = ""
	TypeIncome      MovementType = "income"
	TypeExpense     MovementType = "expense"
)

// ParseMovementType parses a movement type from user input. Legacy
// Spanish labels are accepted as aliases.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TypeUnspecified, nil
	case "income", "ingreso":
		return TypeIncome, nil
	case "expense", "egreso":
		return TypeExpense, nil
	default:
		return TypeUnspecified, fmt.Errorf("%w: %q", ErrInvalidMovementType, s)
	}
}

// Movement is a single signed entry in the ledger. Charge, Credit and
// Balance are derived columns owned by the balance engine; everything
// else is caller data.
type Movement struct {
	ID          string
	Date        time.Time
	Concept     string
	Amount      decimal.Decimal
	Type        MovementType
	Charge      decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
	Status      string
	Notes       string
	Attachments []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Before reports whether m precedes other in ledger order: by date,
// then by id for movements sharing a date.
func (m *Movement) Before(other *Movement) bool {
	if !m.Date.Equal(other.Date) {
		return m.Date.Before(other.Date)
	}
	return m.ID < other.ID
}

// Classify derives the charge/credit pair for an amount. An explicit
// type wins regardless of sign; untyped amounts fall back to the sign,
// with zero treated as a credit. Exactly one side is ever non-zero
// (both are zero only for a zero amount).
func Classify(amount decimal.Decimal, t MovementType) (charge, credit decimal.Decimal) {
	abs := amount.Abs()

	switch t {
	case TypeIncome:
		return decimal.Zero, abs
	case TypeExpense:
		return abs, decimal.Zero
	default:
		if amount.IsNegative() {
			return abs, decimal.Zero
		}
		return decimal.Zero, abs
	}
}

// DateOnly normalizes a timestamp to midnight UTC of its calendar day.
// All ledger ordering and range queries operate on these values.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
