package equipment

import (
	"context"

	"labbooking/internal/domain"
)

// Repository is the registry's persistence surface.
type Repository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, department string) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
}
