package repository

import (
	"context"

	"github.com/spendario/spendario-api/internal/domain/entity"
)

// CategoryRepository reads the seeded category set. Categories are never
// created or mutated through the API.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
}
