package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

// MockMovementRepository is an in-memory implementation of
// usecase.MovementRepository with the same (date, id) ordering
// semantics as the SQL store. Individual methods can be overridden via
// the corresponding Func field.
type MockMovementRepository struct {
	mu        sync.Mutex
	movements map[string]*domain.Movement

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error
	UpdateBalanceFunc func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error
	UpdateDerivedFunc func(ctx context.Context, tx usecase.Transaction, id string, charge, credit, balance decimal.Decimal) error
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{
		movements: make(map[string]*domain.Movement),
	}
}

// Seed stores a movement directly, bypassing the engine. Useful for
// corrupting derived columns in repair tests.
func (r *MockMovementRepository) Seed(m *domain.Movement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *m
	r.movements[m.ID] = &clone
}

func (r *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
	if r.CreateFunc != nil {
		return r.CreateFunc(ctx, tx, m)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[m.ID]; ok {
		return fmt.Errorf("duplicate movement id %s", m.ID)
	}
	clone := *m
	r.movements[m.ID] = &clone
	return nil
}

func (r *MockMovementRepository) Update(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[m.ID]; !ok {
		return domain.ErrMovementNotFound
	}
	clone := *m
	r.movements[m.ID] = &clone
	return nil
}

func (r *MockMovementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[id]; !ok {
		return domain.ErrMovementNotFound
	}
	delete(r.movements, id)
	return nil
}

func (r *MockMovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movements[id]
	if !ok {
		return nil, domain.ErrMovementNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *MockMovementRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Movement, error) {
	return r.GetByID(ctx, id)
}

func (r *MockMovementRepository) PredecessorBalance(ctx context.Context, tx usecase.Transaction, date time.Time, id string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := &domain.Movement{ID: id, Date: date}

	var pred *domain.Movement
	for _, m := range r.movements {
		if !m.Before(key) {
			continue
		}
		if pred == nil || pred.Before(m) {
			pred = m
		}
	}

	if pred == nil {
		return decimal.Zero, nil
	}
	return pred.Balance, nil
}

func (r *MockMovementRepository) ListFromKey(ctx context.Context, tx usecase.Transaction, date time.Time, id string) ([]*domain.Movement, error) {
	key := &domain.Movement{ID: id, Date: date}

	var out []*domain.Movement
	for _, m := range r.sorted() {
		if m.Before(key) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MockMovementRepository) ListAllForUpdate(ctx context.Context, tx usecase.Transaction) ([]*domain.Movement, error) {
	return r.sorted(), nil
}

func (r *MockMovementRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	if r.UpdateBalanceFunc != nil {
		return r.UpdateBalanceFunc(ctx, tx, id, balance)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movements[id]
	if !ok {
		return domain.ErrMovementNotFound
	}
	m.Balance = balance
	return nil
}

func (r *MockMovementRepository) UpdateDerived(ctx context.Context, tx usecase.Transaction, id string, charge, credit, balance decimal.Decimal) error {
	if r.UpdateDerivedFunc != nil {
		return r.UpdateDerivedFunc(ctx, tx, id, charge, credit, balance)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movements[id]
	if !ok {
		return domain.ErrMovementNotFound
	}
	m.Charge = charge
	m.Credit = credit
	m.Balance = balance
	return nil
}

func (r *MockMovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MockMovementRepository) ListAll(ctx context.Context) ([]*domain.Movement, error) {
	return r.sorted(), nil
}

func (r *MockMovementRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.movements)), nil
}

func (r *MockMovementRepository) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.movements {
		if !m.Date.Before(from) && m.Date.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *MockMovementRepository) LastBalance(ctx context.Context) (decimal.Decimal, error) {
	all := r.sorted()
	if len(all) == 0 {
		return decimal.Zero, nil
	}
	return all[len(all)-1].Balance, nil
}

func (r *MockMovementRepository) SumInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	income, expense := decimal.Zero, decimal.Zero
	for _, m := range r.movements {
		if !m.Date.Before(from) && m.Date.Before(to) {
			income = income.Add(m.Credit)
			expense = expense.Add(m.Charge)
		}
	}
	return income, expense, nil
}

func (r *MockMovementRepository) SumAll(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	income, expense := decimal.Zero, decimal.Zero
	for _, m := range r.movements {
		income = income.Add(m.Credit)
		expense = expense.Add(m.Charge)
	}
	return income, expense, nil
}

func (r *MockMovementRepository) sorted() []*domain.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Movement, 0, len(r.movements))
	for _, m := range r.movements {
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// MockTransaction is a no-op transaction recording its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out no-op transactions.
type MockTransactionManager struct {
	mu    sync.Mutex
	Began []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Began = append(m.Began, tx)
	return tx, nil
}

// MockIDGenerator generates sequential ids that sort in assignment
// order, like the ULID generator the real store uses.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (g *MockIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("mv-%08d", g.next)
}

// MockAuditRepository records audit entries in memory.
type MockAuditRepository struct {
	mu      sync.Mutex
	Entries []*domain.AuditLog
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (r *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, log)
	return nil
}

func (r *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.AuditLog
	for _, e := range r.Entries {
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.MovementID != "" && e.MovementID != filter.MovementID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
