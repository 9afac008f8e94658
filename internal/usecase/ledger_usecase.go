package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
)

// LedgerUseCase handles ledger-wide consistency operations.
type LedgerUseCase struct {
	movementRepo MovementRepository
	engine       *MovementUseCase
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(movementRepo MovementRepository, engine *MovementUseCase) *LedgerUseCase {
	return &LedgerUseCase{
		movementRepo: movementRepo,
		engine:       engine,
	}
}

// CheckConsistency verifies the running-balance invariant for every
// movement in (date, id) order: each balance equals the previous
// balance plus credit minus charge, with a zero baseline, and charge
// and credit are never both non-zero.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	rows, err := uc.movementRepo.ListAll(ctx)
	if err != nil {
		return false, err
	}

	running := decimal.Zero
	for _, row := range rows {
		if !row.Charge.IsZero() && !row.Credit.IsZero() {
			return false, nil
		}

		running = running.Add(row.Credit).Sub(row.Charge)
		if !row.Balance.Equal(running) {
			return false, nil
		}
	}

	return true, nil
}

// EnsureConsistent checks the invariant and repairs the ledger with a
// full recalculation when it does not hold. A crash mid-cascade leaves
// the suffix after the crash point stale; this is the designated
// recovery path and is safe to run at startup.
func (uc *LedgerUseCase) EnsureConsistent(ctx context.Context) error {
	ok, err := uc.CheckConsistency(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	log.Warn().Err(domain.ErrInconsistentLedger).Msg("recalculating all balances")

	result, err := uc.engine.RecalculateAll(ctx)
	if err != nil {
		return fmt.Errorf("repairing: %w: %w", domain.ErrInconsistentLedger, err)
	}

	log.Info().
		Int("count", result.Count).
		Str("final_balance", result.FinalBalance.String()).
		Msg("ledger repaired")

	return nil
}
