package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/domain/repository"
)

// In-memory repositories backing the full wired router in these tests.
// They mirror the store semantics the handlers depend on: unique emails,
// the owned-and-active predicate, and active-only list ordering.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memCategoryRepo struct {
	categories map[int]entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	r := &memCategoryRepo{categories: map[int]entity.Category{}}
	for i, name := range []string{"Alimentacao", "Transporte", "Moradia"} {
		id := i + 1
		r.categories[id] = entity.Category{ID: id, Name: name, Slug: name, CreatedAt: time.Now().UTC()}
	}
	return r
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memExpenseRepo struct {
	mu       sync.Mutex
	expenses map[string]*entity.Expense
	seq      int
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{expenses: map[string]*entity.Expense{}}
}

func (r *memExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	r.seq++
	e.CreatedAt = time.Unix(1700000000, 0).UTC().Add(time.Duration(r.seq) * time.Second)
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *memExpenseRepo) GetOwned(_ context.Context, id, userID string) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID || e.Deleted() {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.expenses[e.ID]
	if !ok || stored.UserID != e.UserID || stored.Deleted() {
		return repository.ErrNotFound
	}
	e.CreatedAt = stored.CreatedAt
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *memExpenseRepo) SoftDelete(_ context.Context, id, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID || e.Deleted() {
		return repository.ErrNotFound
	}
	e.DeletedAt = &at
	return nil
}

func (r *memExpenseRepo) ListByOwner(_ context.Context, userID string, limit, offset int) ([]entity.Expense, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID && !e.Deleted() {
			active = append(active, *e)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].TransactionDate.Equal(active[j].TransactionDate) {
			return active[i].TransactionDate.After(active[j].TransactionDate)
		}
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	total := len(active)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return active[offset:end], total, nil
}

var (
	_ repository.UserRepository     = (*memUserRepo)(nil)
	_ repository.CategoryRepository = (*memCategoryRepo)(nil)
	_ repository.ExpenseRepository  = (*memExpenseRepo)(nil)
)
