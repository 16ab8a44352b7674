package maintenance

import "github.com/megui/backend/internal/domain/shared"

// WorkOrderCreatedEvent is raised when a work order is planned.
type WorkOrderCreatedEvent struct {
	shared.BaseDomainEvent
	Codigo string
	Titulo string
}

// NewWorkOrderCreatedEvent creates a WorkOrderCreatedEvent.
func NewWorkOrderCreatedEvent(w *WorkOrder) *WorkOrderCreatedEvent {
	return &WorkOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("maintenance.workorder.created", "WorkOrder", w.ID),
		Codigo:          w.Codigo,
		Titulo:          w.Titulo,
	}
}
