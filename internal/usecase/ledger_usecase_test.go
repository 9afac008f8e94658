package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

func TestCheckConsistency_EmptyLedger(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)

	ok, err := ledger.CheckConsistency(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckConsistency_ValidLedger(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)
	ctx := context.Background()

	_, err := f.engine.InsertMovement(ctx, usecase.CreateMovementInput{
		Date: dateptr(2024, 1, 1), Concept: "salary", Amount: dec("100"), Type: domain.TypeIncome,
	})
	require.NoError(t, err)

	_, err = f.engine.InsertMovement(ctx, usecase.CreateMovementInput{
		Date: dateptr(2024, 1, 2), Concept: "rent", Amount: dec("40"), Type: domain.TypeExpense,
	})
	require.NoError(t, err)

	ok, err := ledger.CheckConsistency(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckConsistency_DetectsStaleBalance(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)

	f.repo.Seed(&domain.Movement{
		ID: "m1", Date: date(2024, 1, 1), Concept: "salary",
		Amount: dec("100"), Credit: dec("100"), Balance: dec("100"),
	})
	f.repo.Seed(&domain.Movement{
		ID: "m2", Date: date(2024, 1, 2), Concept: "rent",
		Amount: dec("-40"), Charge: dec("40"), Balance: dec("100"), // stale
	})

	ok, err := ledger.CheckConsistency(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckConsistency_DetectsDoubleSidedRow(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)

	f.repo.Seed(&domain.Movement{
		ID: "m1", Date: date(2024, 1, 1), Concept: "broken",
		Amount: dec("100"), Charge: dec("100"), Credit: dec("100"), Balance: dec("0"),
	})

	ok, err := ledger.CheckConsistency(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureConsistent_RepairsLedger(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)
	ctx := context.Background()

	f.repo.Seed(&domain.Movement{
		ID: "m1", Date: date(2024, 1, 1), Concept: "salary",
		Amount: dec("100"), Credit: dec("100"), Balance: dec("55"), // corrupted
	})

	require.NoError(t, ledger.EnsureConsistent(ctx))

	ok, err := ledger.CheckConsistency(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	m, err := f.engine.GetMovement(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, m.Balance.Equal(dec("100")))
}

func TestEnsureConsistent_NoopWhenValid(t *testing.T) {
	f := newEngineFixture()
	ledger := usecase.NewLedgerUseCase(f.repo, f.engine)
	ctx := context.Background()

	_, err := f.engine.InsertMovement(ctx, usecase.CreateMovementInput{
		Concept: "fine", Amount: dec("10"),
	})
	require.NoError(t, err)

	require.NoError(t, ledger.EnsureConsistent(ctx))

	// A repair would have audited a recalculation.
	entries, err := f.audit.List(ctx, domain.AuditFilter{Action: domain.AuditLedgerRecalculate})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
