package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/domain/repository"
)

// PostgreSQL error codes handled explicitly.
const (
	uniqueViolation   = "23505"
	invalidTextSyntax = "22P02" // e.g. a non-UUID string compared to a uuid column
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (email, hashed_password, full_name)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, u.Email, u.Password, nullable(u.FullName))
		return row.Scan(&u.ID, &u.CreatedAt)
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*entity.User, error) {
	u := &entity.User{}
	var fullName *string

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, full_name, created_at
		FROM users
		WHERE `+column+` = $1
	`, value)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &fullName, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, pgx.ErrNoRows) ||
			(errors.As(err, &pgErr) && pgErr.Code == invalidTextSyntax) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	return u, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repository.UserRepository = (*UserRepository)(nil)
