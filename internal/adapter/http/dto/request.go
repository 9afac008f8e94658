package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

// DateLayout is the wire format for movement dates.
const DateLayout = "2006-01-02"

// CreateMovementRequest represents a request to insert a movement.
// Amount accepts a JSON number or numeric string; anything else is
// rejected during decoding.
type CreateMovementRequest struct {
	Date        string          `json:"date,omitempty"`
	Concept     string          `json:"concept"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type,omitempty"`
	Status      string          `json:"status,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMovementRequest) ToUseCaseInput() (usecase.CreateMovementInput, error) {
	mvType, err := domain.ParseMovementType(r.Type)
	if err != nil {
		return usecase.CreateMovementInput{}, err
	}

	var date *time.Time
	if r.Date != "" {
		parsed, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			return usecase.CreateMovementInput{}, fmt.Errorf("invalid date %q: use %s", r.Date, DateLayout)
		}
		date = &parsed
	}

	return usecase.CreateMovementInput{
		Date:        date,
		Concept:     r.Concept,
		Amount:      r.Amount,
		Type:        mvType,
		Status:      r.Status,
		Notes:       r.Notes,
		Attachments: r.Attachments,
	}, nil
}

// UpdateMovementRequest represents a partial movement update. Absent
// fields keep their stored values.
type UpdateMovementRequest struct {
	Date        *string          `json:"date,omitempty"`
	Concept     *string          `json:"concept,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Attachments []string         `json:"attachments,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateMovementRequest) ToUseCaseInput() (usecase.UpdateMovementInput, error) {
	input := usecase.UpdateMovementInput{
		Concept:     r.Concept,
		Amount:      r.Amount,
		Status:      r.Status,
		Notes:       r.Notes,
		Attachments: r.Attachments,
	}

	if r.Type != nil {
		mvType, err := domain.ParseMovementType(*r.Type)
		if err != nil {
			return usecase.UpdateMovementInput{}, err
		}
		input.Type = &mvType
	}

	if r.Date != nil {
		parsed, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return usecase.UpdateMovementInput{}, fmt.Errorf("invalid date %q: use %s", *r.Date, DateLayout)
		}
		input.Date = &parsed
	}

	return input, nil
}
