package repository

import (
	"context"
	"time"

	"github.com/spendario/spendario-api/internal/domain/entity"
)

// ExpenseRepository persists expenses. Every read and mutation targeting a
// single record carries the owned-and-active predicate: the row must belong
// to the given user and must not be soft-deleted, otherwise ErrNotFound.
// Wrong owner, tombstoned and absent are indistinguishable from here up.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetOwned(ctx context.Context, id, userID string) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	SoftDelete(ctx context.Context, id, userID string, at time.Time) error
	// ListByOwner returns one page of active expenses ordered by transaction
	// date descending then creation time descending, plus the total count of
	// active records for the same owner.
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]entity.Expense, int, error)
}
