package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/domain/repository"
)

// ownedActive is the single predicate behind every single-record expense
// operation: the row must belong to the acting user and must not be
// tombstoned. Keeping it in one place means no query path can forget the
// soft-delete filter.
const ownedActive = "id = $1 AND user_id = $2 AND deleted_at IS NULL"

const expenseColumns = "id, user_id, category_id, amount::text, currency, description, transaction_date, created_at"

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO expenses (user_id, category_id, amount, currency, description, transaction_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, e.UserID, e.CategoryID, e.Amount.String(), e.Currency, e.Description, e.TransactionDate)
		return row.Scan(&e.ID, &e.CreatedAt)
	})
}

func (r *ExpenseRepository) GetOwned(ctx context.Context, id, userID string) (*entity.Expense, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE `+ownedActive,
		id, userID)
	return scanExpense(row)
}

func (r *ExpenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE expenses
			SET category_id = $3, amount = $4, currency = $5, description = $6, transaction_date = $7
			WHERE `+ownedActive+`
			RETURNING created_at
		`, e.ID, e.UserID, e.CategoryID, e.Amount.String(), e.Currency, e.Description, e.TransactionDate)
		if err := row.Scan(&e.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
				return repository.ErrNotFound
			}
			return err
		}
		return nil
	})
}

func (r *ExpenseRepository) SoftDelete(ctx context.Context, id, userID string, at time.Time) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE expenses
			SET deleted_at = $3
			WHERE `+ownedActive,
			id, userID, at)
		if err != nil {
			if isInvalidText(err) {
				return repository.ErrNotFound
			}
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]entity.Expense, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM expenses
		WHERE user_id = $1 AND deleted_at IS NULL
	`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *e)
	}
	return out, total, rows.Err()
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	e := &entity.Expense{}
	var amount string
	if err := row.Scan(&e.ID, &e.UserID, &e.CategoryID, &amount, &e.Currency,
		&e.Description, &e.TransactionDate, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			// A syntactically invalid id must look exactly like an absent row.
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var err error
	e.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextSyntax
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
