package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
)

// Repository persists companies.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByRUC(ctx context.Context, ruc string) (*Company, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
