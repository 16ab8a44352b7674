package ticketing

import "github.com/megui/backend/internal/domain/shared"

// TicketCreatedEvent is raised when a visitor access ticket is issued.
type TicketCreatedEvent struct {
	shared.BaseDomainEvent
	NombrePersona   string
	NumeroDocumento string
}

// NewTicketCreatedEvent creates a TicketCreatedEvent.
func NewTicketCreatedEvent(t *Ticket) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("ticketing.ticket.created", "Ticket", t.ID),
		NombrePersona:   t.NombrePersona,
		NumeroDocumento: t.NumeroDocumento,
	}
}
