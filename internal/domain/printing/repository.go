package printing

import (
	"context"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
)

// JobRepository persists generation jobs.
type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PrintJob, error)
	FindByDocument(ctx context.Context, docType DocType, documentID uuid.UUID) ([]PrintJob, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PrintJob, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, job *PrintJob) error
	Delete(ctx context.Context, id uuid.UUID) error
}
