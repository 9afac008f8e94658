package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/contafin/ledger/internal/domain"
	"github.com/contafin/ledger/internal/usecase"
)

// Money columns are selected as text and parsed with shopspring/decimal
// to avoid float conversions anywhere in the path.
const movementColumns = `
	id, date, concept, amount::text, type,
	charge::text, credit::text, balance::text,
	status, notes, attachments, created_at, updated_at`

// MovementRepository implements movement persistence on PostgreSQL.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// dbtx is the common surface of a pool and a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conn returns the transaction's connection when one is given, the pool
// otherwise.
func (r *MovementRepository) conn(tx usecase.Transaction) dbtx {
	if t, ok := tx.(*Tx); ok && t != nil {
		return t.PgxTx()
	}
	return r.pool
}

// Create inserts a new movement.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
	query := `
		INSERT INTO movements (
			id, date, concept, amount, type,
			charge, credit, balance,
			status, notes, attachments, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4::numeric, $5,
			$6::numeric, $7::numeric, $8::numeric,
			$9, $10, $11, $12, $13
		)
	`

	_, err := r.conn(tx).Exec(ctx, query,
		m.ID,
		m.Date,
		m.Concept,
		m.Amount.String(),
		string(m.Type),
		m.Charge.String(),
		m.Credit.String(),
		m.Balance.String(),
		m.Status,
		m.Notes,
		m.Attachments,
		m.CreatedAt,
		m.UpdatedAt,
	)

	return err
}

// Update rewrites all caller-owned and derived columns of a movement.
func (r *MovementRepository) Update(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
	query := `
		UPDATE movements SET
			date = $2,
			concept = $3,
			amount = $4::numeric,
			type = $5,
			charge = $6::numeric,
			credit = $7::numeric,
			status = $8,
			notes = $9,
			attachments = $10,
			updated_at = $11
		WHERE id = $1
	`

	tag, err := r.conn(tx).Exec(ctx, query,
		m.ID,
		m.Date,
		m.Concept,
		m.Amount.String(),
		string(m.Type),
		m.Charge.String(),
		m.Credit.String(),
		m.Status,
		m.Notes,
		m.Attachments,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// Delete removes a movement by ID.
func (r *MovementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := r.conn(tx).Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// GetByID retrieves a movement by ID.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return scanMovement(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a movement by ID, locking its row.
func (r *MovementRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return scanMovement(r.conn(tx).QueryRow(ctx, query, id))
}

// PredecessorBalance returns the balance of the movement with the
// greatest ordering key strictly below (date, id), zero when none
// exists.
func (r *MovementRepository) PredecessorBalance(ctx context.Context, tx usecase.Transaction, date time.Time, id string) (decimal.Decimal, error) {
	query := `
		SELECT balance::text
		FROM movements
		WHERE (date, id) < ($1::date, $2::text)
		ORDER BY date DESC, id DESC
		LIMIT 1
	`

	var raw string
	err := r.conn(tx).QueryRow(ctx, query, date, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.NewFromString(raw)
}

// ListFromKey returns movements with ordering key at or above
// (date, id), locked for update.
func (r *MovementRepository) ListFromKey(ctx context.Context, tx usecase.Transaction, date time.Time, id string) ([]*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE (date, id) >= ($1::date, $2::text)
		ORDER BY date, id
		FOR UPDATE
	`

	rows, err := r.conn(tx).Query(ctx, query, date, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListAllForUpdate returns the whole ledger in key order, locked for
// update.
func (r *MovementRepository) ListAllForUpdate(ctx context.Context, tx usecase.Transaction) ([]*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date, id FOR UPDATE`

	rows, err := r.conn(tx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// UpdateBalance rewrites the running balance of a movement.
func (r *MovementRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	tag, err := r.conn(tx).Exec(ctx,
		`UPDATE movements SET balance = $2::numeric WHERE id = $1`,
		id, balance.String(),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// UpdateDerived rewrites all three derived columns of a movement.
func (r *MovementRepository) UpdateDerived(ctx context.Context, tx usecase.Transaction, id string, charge, credit, balance decimal.Decimal) error {
	tag, err := r.conn(tx).Exec(ctx,
		`UPDATE movements SET charge = $2::numeric, credit = $3::numeric, balance = $4::numeric WHERE id = $1`,
		id, charge.String(), credit.String(), balance.String(),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// List returns a page of movements in key order.
func (r *MovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date, id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListAll returns the whole ledger in key order.
func (r *MovementRepository) ListAll(ctx context.Context) ([]*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// Count returns the total number of movements.
func (r *MovementRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movements`).Scan(&n)
	return n, err
}

// CountInRange counts movements with from <= date < to.
func (r *MovementRepository) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM movements WHERE date >= $1::date AND date < $2::date`,
		from, to,
	).Scan(&n)
	return n, err
}

// LastBalance returns the balance of the greatest-key movement, zero on
// an empty ledger.
func (r *MovementRepository) LastBalance(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	err := r.pool.QueryRow(ctx,
		`SELECT balance::text FROM movements ORDER BY date DESC, id DESC LIMIT 1`,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.NewFromString(raw)
}

// SumInRange sums credits and charges over from <= date < to.
func (r *MovementRepository) SumInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(credit), 0)::text, COALESCE(SUM(charge), 0)::text
		FROM movements
		WHERE date >= $1::date AND date < $2::date
	`

	return r.sumRow(ctx, query, from, to)
}

// SumAll sums credits and charges over the whole ledger.
func (r *MovementRepository) SumAll(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(credit), 0)::text, COALESCE(SUM(charge), 0)::text FROM movements`

	return r.sumRow(ctx, query)
}

func (r *MovementRepository) sumRow(ctx context.Context, query string, args ...any) (decimal.Decimal, decimal.Decimal, error) {
	var rawIncome, rawExpense string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rawIncome, &rawExpense); err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	income, err := decimal.NewFromString(rawIncome)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	expense, err := decimal.NewFromString(rawExpense)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	return income, expense, nil
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		m          domain.Movement
		mvType     string
		rawAmount  string
		rawCharge  string
		rawCredit  string
		rawBalance string
	)

	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.Concept,
		&rawAmount,
		&mvType,
		&rawCharge,
		&rawCredit,
		&rawBalance,
		&m.Status,
		&m.Notes,
		&m.Attachments,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMovementNotFound
	}
	if err != nil {
		return nil, err
	}

	m.Type = domain.MovementType(mvType)
	m.Date = m.Date.UTC()

	if m.Amount, err = decimal.NewFromString(rawAmount); err != nil {
		return nil, err
	}
	if m.Charge, err = decimal.NewFromString(rawCharge); err != nil {
		return nil, err
	}
	if m.Credit, err = decimal.NewFromString(rawCredit); err != nil {
		return nil, err
	}
	if m.Balance, err = decimal.NewFromString(rawBalance); err != nil {
		return nil, err
	}

	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	var out []*domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
