package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/infrastructure/metrics"
)

// StatsCacheKey is the single cache key holding ledger statistics.
// Every successful write invalidates it.
const StatsCacheKey = "ledger:statistics"

// MovementUseCase is the balance engine: the sole writer of the derived
// charge, credit and balance columns.
//
// Any movement can shift the running balance of every later row, so all
// writes are serialized behind one mutex, and each write performs its
// predecessor read and cascade inside a single database transaction. A
// failed cascade rolls back whole; the stored ledger is never left
// half-rewritten by an operation that returned success.
type MovementUseCase struct {
	mu sync.Mutex

	txManager    TransactionManager
	movementRepo MovementRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	cache        Cache
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewMovementUseCase creates a new MovementUseCase. auditRepo, cache,
// retrier and m are optional.
func NewMovementUseCase(
	txManager TransactionManager,
	movementRepo MovementRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	cache Cache,
	retrier Retrier,
	m *metrics.Metrics,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		movementRepo: movementRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		cache:        cache,
		retrier:      retrier,
		metrics:      m,
	}
}

// CreateMovementInput represents input for inserting a movement.
type CreateMovementInput struct {
	Date        *time.Time
	Concept     string
	Amount      decimal.Decimal
	Type        domain.MovementType
	Status      string
	Notes       string
	Attachments []string
}

// InsertMovement classifies and persists a new movement, computing its
// balance from the predecessor by ordering key and cascading to every
// movement after it.
func (uc *MovementUseCase) InsertMovement(ctx context.Context, input CreateMovementInput) (*domain.Movement, error) {
	if err := domain.ValidateConcept(input.Concept); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	date := domain.DateOnly(now)
	if input.Date != nil {
		date = domain.DateOnly(*input.Date)
	}

	status := input.Status
	if status == "" {
		status = domain.DefaultStatus
	}

	m := &domain.Movement{
		ID:          uc.idGen.Generate(),
		Date:        date,
		Concept:     input.Concept,
		Amount:      input.Amount,
		Type:        input.Type,
		Status:      status,
		Notes:       input.Notes,
		Attachments: input.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.Charge, m.Credit = domain.Classify(m.Amount, m.Type)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.movementRepo.Create(ctx, tx, m); err != nil {
			return err
		}

		balances, err := uc.rebalanceFrom(ctx, tx, m.Date, m.ID)
		if err != nil {
			return err
		}
		m.Balance = balances[m.ID]

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MovementsInserted.Inc()
		uc.metrics.MovementAmount.Observe(m.Amount.Abs().InexactFloat64())
	}

	uc.invalidateStats(ctx)
	uc.audit(ctx, domain.AuditMovementInsert, m.ID, nil, m)

	return m, nil
}

// UpdateMovementInput represents a partial update. Nil fields retain
// their prior values.
type UpdateMovementInput struct {
	Date        *time.Time
	Concept     *string
	Amount      *decimal.Decimal
	Type        *domain.MovementType
	Status      *string
	Notes       *string
	Attachments []string
}

// UpdateMovement merges the patch into the stored movement,
// re-classifies it, and cascades the running balance from whichever of
// the old and new positions comes first through the end of the ledger.
func (uc *MovementUseCase) UpdateMovement(ctx context.Context, id string, patch UpdateMovementInput) (*domain.Movement, error) {
	if patch.Concept != nil {
		if err := domain.ValidateConcept(*patch.Concept); err != nil {
			return nil, err
		}
	}

	if patch.Amount != nil {
		if err := domain.ValidateAmount(*patch.Amount); err != nil {
			return nil, err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var before, updated *domain.Movement

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		current, err := uc.movementRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		prior := *current
		before = &prior

		m := *current
		if patch.Date != nil {
			m.Date = domain.DateOnly(*patch.Date)
		}
		if patch.Concept != nil {
			m.Concept = *patch.Concept
		}
		if patch.Amount != nil {
			m.Amount = *patch.Amount
		}
		if patch.Type != nil {
			m.Type = *patch.Type
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}
		if patch.Attachments != nil {
			m.Attachments = patch.Attachments
		}
		m.Charge, m.Credit = domain.Classify(m.Amount, m.Type)
		m.UpdatedAt = time.Now().UTC()

		if err := uc.movementRepo.Update(ctx, tx, &m); err != nil {
			return err
		}

		// The id is unchanged, so the lower of the two ordering keys is
		// simply the earlier date. Cascading from there covers both the
		// old and the new neighborhood.
		from := m.Date
		if prior.Date.Before(from) {
			from = prior.Date
		}

		balances, err := uc.rebalanceFrom(ctx, tx, from, m.ID)
		if err != nil {
			return err
		}
		m.Balance = balances[m.ID]
		updated = &m

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MovementsUpdated.Inc()
	}

	uc.invalidateStats(ctx)
	uc.audit(ctx, domain.AuditMovementUpdate, id, before, updated)

	return updated, nil
}

// DeleteMovement removes a movement and cascades the running balance of
// everything after it, starting from the predecessor's balance.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var removed *domain.Movement

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		current, err := uc.movementRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := uc.movementRepo.Delete(ctx, tx, id); err != nil {
			return err
		}

		if _, err := uc.rebalanceFrom(ctx, tx, current.Date, current.ID); err != nil {
			return err
		}
		removed = current

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.MovementsDeleted.Inc()
	}

	uc.invalidateStats(ctx)
	uc.audit(ctx, domain.AuditMovementDelete, id, removed, nil)

	return nil
}

// RecalculationResult summarizes a full ledger repair.
type RecalculationResult struct {
	Count        int
	FinalBalance decimal.Decimal
}

// RecalculateAll walks the whole ledger in (date, id) order, re-derives
// charge and credit from the stored amount and type, and rewrites every
// running balance. It repairs any corruption left behind by a crash or
// by direct edits to caller-owned fields, and is idempotent. Safe to
// invoke at any time, including startup.
func (uc *MovementUseCase) RecalculateAll(ctx context.Context) (*RecalculationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	result := &RecalculationResult{FinalBalance: decimal.Zero}

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		rows, err := uc.movementRepo.ListAllForUpdate(ctx, tx)
		if err != nil {
			return err
		}

		running := decimal.Zero
		for _, row := range rows {
			charge, credit := domain.Classify(row.Amount, row.Type)
			running = running.Add(credit).Sub(charge)

			if err := uc.movementRepo.UpdateDerived(ctx, tx, row.ID, charge, credit, running); err != nil {
				return err
			}
		}

		result.Count = len(rows)
		result.FinalBalance = running

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.Recalculations.Inc()
		uc.metrics.LedgerBalance.Set(result.FinalBalance.InexactFloat64())
	}

	uc.invalidateStats(ctx)
	uc.audit(ctx, domain.AuditLedgerRecalculate, "", nil, result)

	return result, nil
}

// GetMovement retrieves a movement by ID.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}

// ListAuditLogs returns the audit trail of write operations. Without an
// audit repository the trail is empty.
func (uc *MovementUseCase) ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if uc.auditRepo == nil {
		return nil, nil
	}

	return uc.auditRepo.List(ctx, filter)
}

// rebalanceFrom rewrites the running balance of every movement whose
// ordering key is at or above (date, id), starting from the
// predecessor's balance. Stored charge/credit values are taken as-is.
// Returns the recomputed balances keyed by movement ID.
func (uc *MovementUseCase) rebalanceFrom(ctx context.Context, tx Transaction, date time.Time, id string) (map[string]decimal.Decimal, error) {
	start := time.Now()

	running, err := uc.movementRepo.PredecessorBalance(ctx, tx, date, id)
	if err != nil {
		return nil, err
	}

	rows, err := uc.movementRepo.ListFromKey(ctx, tx, date, id)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		running = running.Add(row.Credit).Sub(row.Charge)

		if err := uc.movementRepo.UpdateBalance(ctx, tx, row.ID, running); err != nil {
			return nil, err
		}
		balances[row.ID] = running
	}

	if uc.metrics != nil {
		uc.metrics.CascadeRows.Observe(float64(len(rows)))
		uc.metrics.CascadeDuration.Observe(time.Since(start).Seconds())
	}

	return balances, nil
}

func (uc *MovementUseCase) retry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}

	return uc.retrier.Retry(ctx, op)
}

func (uc *MovementUseCase) invalidateStats(ctx context.Context) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Delete(ctx, StatsCacheKey); err != nil {
		log.Warn().Err(err).Msg("statistics cache invalidation failed")
	}
}

func (uc *MovementUseCase) audit(ctx context.Context, action, movementID string, before, after any) {
	if uc.auditRepo == nil {
		return
	}

	entry := &domain.AuditLog{
		ID:          uc.idGen.Generate(),
		Action:      action,
		MovementID:  movementID,
		BeforeState: toState(before),
		AfterState:  toState(after),
		Status:      "ok",
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("audit log write failed")
	}
}

func toState(v any) map[string]any {
	if v == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	var state map[string]any
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil
	}

	return state
}
