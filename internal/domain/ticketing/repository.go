package ticketing

import (
	"context"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
)

// Repository persists tickets. NextNumero hands out the sequential
// display number, which is assigned once per ticket.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	FindByNumero(ctx context.Context, numero int64) (*Ticket, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Ticket, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	NextNumero(ctx context.Context) (int64, error)
	Save(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
}
