package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/spendario/spendario-api/internal/domain/entity"
	repo "github.com/spendario/spendario-api/internal/domain/repository"
)

var (
	// ErrExpenseNotFound is the uniform outcome for absent, foreign-owned and
	// soft-deleted expenses alike. Do not split these cases: callers must not
	// be able to probe for other users' data.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrCategoryNotFound is reported distinctly; category ids carry no
	// ownership-leak risk because the set is global and seeded.
	ErrCategoryNotFound = errors.New("category not found")
)

// ExpenseInput carries the mutable fields of an expense. Update replaces all
// of them.
type ExpenseInput struct {
	CategoryID      int
	Amount          decimal.Decimal
	Currency        string
	Description     string
	TransactionDate time.Time
}

// ExpenseService implements expense CRUD on top of the repositories. Every
// single-record operation runs through the store's owned-and-active
// predicate; this layer never sees another user's rows.
type ExpenseService struct {
	Expenses   repo.ExpenseRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewExpenseService(expenses repo.ExpenseRepository, categories repo.CategoryRepository, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{Expenses: expenses, Categories: categories, Logger: logger}
}

func (s *ExpenseService) checkCategory(ctx context.Context, id int) error {
	if _, err := s.Categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, userID string, in ExpenseInput) (*entity.Expense, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	e := &entity.Expense{
		UserID:          userID,
		CategoryID:      in.CategoryID,
		Amount:          in.Amount,
		Currency:        strings.ToUpper(in.Currency),
		Description:     in.Description,
		TransactionDate: in.TransactionDate,
	}
	if err := s.Expenses.Create(ctx, e); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("create expense failed")
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id string) (*entity.Expense, error) {
	e, err := s.Expenses.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns one page of the user's active expenses plus the total active
// count. page is 1-based; pageSize is assumed already bounded by the caller.
func (s *ExpenseService) List(ctx context.Context, userID string, page, pageSize int) ([]entity.Expense, int, error) {
	offset := (page - 1) * pageSize
	items, total, err := s.Expenses.ListByOwner(ctx, userID, pageSize, offset)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("list expenses failed")
		return nil, 0, err
	}
	return items, total, nil
}

// Update performs a full replace of the mutable fields. The target lookup
// applies the same owned-and-active predicate as Get; the final UPDATE
// re-applies it so a concurrent delete cannot resurrect the row.
func (s *ExpenseService) Update(ctx context.Context, userID, id string, in ExpenseInput) (*entity.Expense, error) {
	e, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	e.CategoryID = in.CategoryID
	e.Amount = in.Amount
	e.Currency = strings.ToUpper(in.Currency)
	e.Description = in.Description
	e.TransactionDate = in.TransactionDate

	if err := s.Expenses.Update(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		s.Logger.WithError(err).WithField("expense_id", id).Error("update expense failed")
		return nil, err
	}
	return e, nil
}

// Delete tombstones the expense. The transition is terminal: there is no
// undelete, and the row is never physically removed here.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Expenses.SoftDelete(ctx, id, userID, time.Now().UTC()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrExpenseNotFound
		}
		s.Logger.WithError(err).WithField("expense_id", id).Error("delete expense failed")
		return err
	}
	return nil
}

// ListCategories returns the seeded category set.
func (s *ExpenseService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.Categories.List(ctx)
}
