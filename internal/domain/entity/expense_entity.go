package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a monetary transaction owned by exactly one user. DeletedAt is
// the soft-delete tombstone: once set, the record is invisible to every read
// path but stays in storage. TransactionDate carries a calendar date only.
type Expense struct {
	ID              string
	UserID          string
	CategoryID      int
	Amount          decimal.Decimal
	Currency        string
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// Deleted reports whether the expense has been tombstoned.
func (e *Expense) Deleted() bool { return e.DeletedAt != nil }
