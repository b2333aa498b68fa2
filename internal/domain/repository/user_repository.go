package repository

import (
	"context"
	"errors"

	"github.com/spendario/spendario-api/internal/domain/entity"
)

// Sentinel errors shared by all repository implementations. Services map
// them onto their own taxonomy; nothing below this layer knows about HTTP.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
