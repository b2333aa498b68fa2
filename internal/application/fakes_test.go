package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/domain/repository"
)

// In-memory repositories mirroring the store semantics the services rely
// on: unique emails, the owned-and-active predicate, and active-only
// list ordering.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
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

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
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

func (r *fakeUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type fakeCategoryRepo struct {
	categories map[int]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[int]entity.Category{}}
	for i, name := range []string{"Alimentacao", "Transporte", "Moradia"} {
		id := i + 1
		r.categories[id] = entity.Category{ID: id, Name: name, Slug: name, CreatedAt: time.Now().UTC()}
	}
	return r
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeExpenseRepo struct {
	mu       sync.Mutex
	expenses map[string]*entity.Expense
	seq      int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[string]*entity.Expense{}}
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	// Strictly increasing creation times keep list ordering deterministic.
	r.seq++
	e.CreatedAt = time.Unix(1700000000, 0).UTC().Add(time.Duration(r.seq) * time.Second)
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetOwned(_ context.Context, id, userID string) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID || e.Deleted() {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
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

func (r *fakeExpenseRepo) SoftDelete(_ context.Context, id, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID || e.Deleted() {
		return repository.ErrNotFound
	}
	e.DeletedAt = &at
	return nil
}

func (r *fakeExpenseRepo) ListByOwner(_ context.Context, userID string, limit, offset int) ([]entity.Expense, int, error) {
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

// row returns the stored record regardless of tombstone state; tests use it
// to assert that soft-deleted rows physically remain.
func (r *fakeExpenseRepo) row(id string) (*entity.Expense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, false
	}
	cp := *e
	return &cp, true
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
	_ repository.ExpenseRepository  = (*fakeExpenseRepo)(nil)
)
