package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxConceptLength  = 500
	MaxMovementAmount = "1000000000000" // 1 trillion

	// DefaultStatus is assigned to movements created without a status.
	DefaultStatus = "Active"
)

var maxAmount = decimal.RequireFromString(MaxMovementAmount)

// ValidateConcept validates a movement concept.
func ValidateConcept(concept string) error {
	concept = strings.TrimSpace(concept)

	if concept == "" {
		return ErrConceptEmpty
	}

	if len(concept) > MaxConceptLength {
		return fmt.Errorf("%w: concept exceeds %d characters", ErrConceptTooLong, MaxConceptLength)
	}

	return nil
}

// ValidateAmount rejects amounts outside the supported magnitude.
// Zero and negative amounts are legal ledger entries.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxMovementAmount)
	}

	return nil
}
