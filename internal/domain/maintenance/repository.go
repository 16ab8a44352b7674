package maintenance

import (
	"context"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
)

// Repository persists work orders together with their task rows.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WorkOrder, error)
	FindByCodigo(ctx context.Context, codigo string) (*WorkOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]WorkOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, w *WorkOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}
