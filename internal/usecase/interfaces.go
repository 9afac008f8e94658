package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
)

// MovementRepository defines data access for ledger movements.
//
// All date ranges are half-open: from inclusive, to exclusive.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, m *domain.Movement) error
	Update(ctx context.Context, tx Transaction, m *domain.Movement) error
	Delete(ctx context.Context, tx Transaction, id string) error
	GetByID(ctx context.Context, id string) (*domain.Movement, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Movement, error)

	// PredecessorBalance returns the balance of the movement with the
	// greatest ordering key strictly below (date, id), or zero when no
	// earlier movement exists.
	PredecessorBalance(ctx context.Context, tx Transaction, date time.Time, id string) (decimal.Decimal, error)
	// ListFromKey returns movements with ordering key at or above
	// (date, id), in ascending key order, locked for update.
	ListFromKey(ctx context.Context, tx Transaction, date time.Time, id string) ([]*domain.Movement, error)
	// ListAllForUpdate returns the whole ledger in ascending key order,
	// locked for update.
	ListAllForUpdate(ctx context.Context, tx Transaction) ([]*domain.Movement, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal) error
	UpdateDerived(ctx context.Context, tx Transaction, id string, charge, credit, balance decimal.Decimal) error

	List(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	ListAll(ctx context.Context) ([]*domain.Movement, error)
	Count(ctx context.Context) (int64, error)
	CountInRange(ctx context.Context, from, to time.Time) (int64, error)
	// LastBalance returns the balance of the greatest-key movement, or
	// zero on an empty ledger.
	LastBalance(ctx context.Context) (decimal.Decimal, error)
	SumInRange(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)
	SumAll(ctx context.Context) (income, expense decimal.Decimal, err error)
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique, monotonically increasing IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
