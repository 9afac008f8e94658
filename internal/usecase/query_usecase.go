package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
)

// QueryUseCase serves the read side of the ledger. It never takes the
// engine's write lock and never touches the derived columns, so reads
// may observe an in-progress cascade from a concurrent writer.
type QueryUseCase struct {
	movementRepo MovementRepository
	cache        Cache
	cacheTTL     time.Duration
}

// NewQueryUseCase creates a new QueryUseCase. cache is optional.
func NewQueryUseCase(movementRepo MovementRepository, cache Cache, cacheTTL time.Duration) *QueryUseCase {
	return &QueryUseCase{
		movementRepo: movementRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// CurrentBalance returns the balance of the last chronological entry,
// or zero on an empty ledger.
func (uc *QueryUseCase) CurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	return uc.movementRepo.LastBalance(ctx)
}

// PeriodTotals holds income/expense aggregates over a date range,
// independent of the running balance.
type PeriodTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// GetPeriodTotals sums credits (income) and charges (expense) over
// movements whose date falls between from and to, both inclusive.
func (uc *QueryUseCase) GetPeriodTotals(ctx context.Context, from, to time.Time) (*PeriodTotals, error) {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)

	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}

	income, expense, err := uc.movementRepo.SumInRange(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &PeriodTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// Statistics aggregates ledger-wide figures for the dashboard.
type Statistics struct {
	TotalMovements     int64
	CurrentBalance     decimal.Decimal
	MovementsThisMonth int64
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	Balance            decimal.Decimal
}

// GetStatistics computes ledger statistics, served from a time-boxed
// cache that the engine invalidates on every write.
func (uc *QueryUseCase) GetStatistics(ctx context.Context) (*Statistics, error) {
	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, StatsCacheKey)
		if err == nil && len(raw) > 0 {
			var stats Statistics
			if err := json.Unmarshal(raw, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	count, err := uc.movementRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := uc.movementRepo.LastBalance(ctx)
	if err != nil {
		return nil, err
	}

	income, expense, err := uc.movementRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	inMonth, err := uc.movementRepo.CountInRange(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TotalMovements:     count,
		CurrentBalance:     balance,
		MovementsThisMonth: inMonth,
		TotalIncome:        income,
		TotalExpense:       expense,
		Balance:            income.Sub(expense),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := uc.cache.Set(ctx, StatsCacheKey, raw, uc.cacheTTL); err != nil {
				log.Warn().Err(err).Msg("statistics cache write failed")
			}
		}
	}

	return stats, nil
}

// ListMovementsInput represents input for listing movements.
type ListMovementsInput struct {
	Limit  int
	Offset int
}

// ListMovements lists movements in (date, id) order. Report exporters
// consume this read-only.
func (uc *QueryUseCase) ListMovements(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}

	if input.Limit > 1000 {
		input.Limit = 1000
	}

	return uc.movementRepo.List(ctx, input.Limit, input.Offset)
}
