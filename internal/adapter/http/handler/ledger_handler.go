package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/adapter/http/dto"
	"github.com/contafin/ledger/internal/usecase"
)

// LedgerQueryService defines the read behavior needed by LedgerHandler.
type LedgerQueryService interface {
	CurrentBalance(ctx context.Context) (decimal.Decimal, error)
	GetPeriodTotals(ctx context.Context, from, to time.Time) (*usecase.PeriodTotals, error)
	GetStatistics(ctx context.Context) (*usecase.Statistics, error)
}

// LedgerAdminService defines the maintenance behavior needed by LedgerHandler.
type LedgerAdminService interface {
	RecalculateAll(ctx context.Context) (*usecase.RecalculationResult, error)
}

// ConsistencyChecker verifies the running-balance invariant.
type ConsistencyChecker interface {
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	queryUC  LedgerQueryService
	engine   LedgerAdminService
	ledgerUC ConsistencyChecker
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(queryUC LedgerQueryService, engine LedgerAdminService, ledgerUC ConsistencyChecker) *LedgerHandler {
	return &LedgerHandler{
		queryUC:  queryUC,
		engine:   engine,
		ledgerUC: ledgerUC,
	}
}

// Balance returns the current ledger balance.
func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.queryUC.CurrentBalance(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// Totals returns income/expense totals over an inclusive date range.
func (h *LedgerHandler) Totals(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		writeError(w, http.StatusBadRequest, "missing 'from' or 'to' parameter", "")
		return
	}

	from, err := time.Parse(dto.DateLayout, fromStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'from' format (use "+dto.DateLayout+")", err.Error())
		return
	}

	to, err := time.Parse(dto.DateLayout, toStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'to' format (use "+dto.DateLayout+")", err.Error())
		return
	}

	totals, err := h.queryUC.GetPeriodTotals(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodTotalsResponse{
		From:    fromStr,
		To:      toStr,
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Balance,
	})
}

// Statistics returns ledger-wide statistics.
func (h *LedgerHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queryUC.GetStatistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatisticsFromUseCase(stats))
}

// Recalculate rewrites every derived column from scratch.
func (h *LedgerHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.RecalculateAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to recalculate ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecalculationResponse{
		Count:        result.Count,
		FinalBalance: result.FinalBalance,
	})
}

// Consistency reports whether the running-balance invariant holds.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check consistency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: ok})
}
