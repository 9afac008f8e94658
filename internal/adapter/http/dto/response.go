package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Concept     string          `json:"concept"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type,omitempty"`
	Charge      decimal.Decimal `json:"charge"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:          m.ID,
		Date:        m.Date.Format(DateLayout),
		Concept:     m.Concept,
		Amount:      m.Amount,
		Type:        string(m.Type),
		Charge:      m.Charge,
		Credit:      m.Credit,
		Balance:     m.Balance,
		Status:      m.Status,
		Notes:       m.Notes,
		Attachments: m.Attachments,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// BalanceResponse represents the current ledger balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// PeriodTotalsResponse represents income/expense totals over a period.
type PeriodTotalsResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// StatisticsResponse represents ledger-wide statistics.
type StatisticsResponse struct {
	TotalMovements     int64           `json:"total_movements"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	MovementsThisMonth int64           `json:"movements_this_month"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpense       decimal.Decimal `json:"total_expense"`
	Balance            decimal.Decimal `json:"balance"`
}

// StatisticsFromUseCase converts usecase statistics to a response.
func StatisticsFromUseCase(s *usecase.Statistics) *StatisticsResponse {
	return &StatisticsResponse{
		TotalMovements:     s.TotalMovements,
		CurrentBalance:     s.CurrentBalance,
		MovementsThisMonth: s.MovementsThisMonth,
		TotalIncome:        s.TotalIncome,
		TotalExpense:       s.TotalExpense,
		Balance:            s.Balance,
	}
}

// RecalculationResponse represents the result of a full recalculation.
type RecalculationResponse struct {
	Count        int             `json:"count"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// ConsistencyResponse represents a consistency check result.
type ConsistencyResponse struct {
	Consistent bool `json:"consistent"`
}

// AuditLogResponse represents an audit log entry in API responses.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	MovementID   string         `json:"movement_id,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = &AuditLogResponse{
			ID:           l.ID,
			Action:       l.Action,
			MovementID:   l.MovementID,
			BeforeState:  l.BeforeState,
			AfterState:   l.AfterState,
			Status:       l.Status,
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
