// Package ticketing orchestrates access ticket registration and lookup.
package ticketing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/company"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/domain/ticketing"
	"go.uber.org/zap"
)

// TicketService handles ticket-related business operations
type TicketService struct {
	tickets   ticketing.Repository
	companies company.Repository
	logger    *zap.Logger
}

// NewTicketService creates a new TicketService
func NewTicketService(tickets ticketing.Repository, companies company.Repository, logger *zap.Logger) *TicketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:   tickets,
		companies: companies,
		logger:    logger,
	}
}

// CreateTicket registers a visitor entry and allocates its display number.
// The company letterhead is snapshotted into the ticket so later edits to
// the empresa do not rewrite issued tickets.
func (s *TicketService) CreateTicket(ctx context.Context, req CreateTicketRequest) (*TicketResponse, error) {
	emp, err := s.companies.FindByID(ctx, req.EmpresaID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Empresa not found")
		}
		return nil, fmt.Errorf("failed to load empresa: %w", err)
	}

	ticket, err := ticketing.NewTicket(ticketing.CompanyInfo{
		CompanyID:    emp.ID,
		RazonSocial:  emp.RazonSocial,
		RUC:          emp.RUC,
		Direccion:    emp.Direccion,
		Telefono:     emp.Telefono,
		Email:        emp.Email,
		LogoFilename: emp.LogoFilename,
	}, req.NombrePersona, req.NumeroDocumento)
	if err != nil {
		return nil, err
	}

	ticket.Sede = req.Sede
	ticket.TipoDocIdentidad = req.TipoDocIdentidad
	ticket.TipoPersona = req.TipoPersona
	ticket.VehiculoNroPlaca = req.VehiculoNroPlaca
	ticket.VehiculoMarca = req.VehiculoMarca
	ticket.VehiculoModelo = req.VehiculoModelo
	ticket.VehiculoColor = req.VehiculoColor
	ticket.TipoEquipo = req.TipoEquipo
	ticket.EquipoMarca = req.EquipoMarca
	ticket.EquipoSerie = req.EquipoSerie
	ticket.AreaDestino = req.AreaDestino
	ticket.PersonaDestino = req.PersonaDestino

	numero, err := s.tickets.NextNumero(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate ticket number: %w", err)
	}
	if err := ticket.AssignNumero(numero); err != nil {
		return nil, err
	}

	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	s.logger.Info("ticket created",
		zap.String("id", ticket.ID.String()),
		zap.Int64("numero", ticket.Numero),
		zap.String("persona", ticket.NombrePersona))

	return toTicketResponse(ticket), nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return toTicketResponse(ticket), nil
}

// GetTicketByNumero retrieves a ticket by its display number
func (s *TicketService) GetTicketByNumero(ctx context.Context, numero int64) (*TicketResponse, error) {
	ticket, err := s.tickets.FindByNumero(ctx, numero)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return toTicketResponse(ticket), nil
}

// ListTickets retrieves a paginated list of tickets
func (s *TicketService) ListTickets(ctx context.Context, req ListTicketsRequest) (*ListTicketsResponse, error) {
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  map[string]any{},
	}
	if req.EmpresaID != "" {
		filter.Filters["empresa_id"] = req.EmpresaID
	}
	if req.Sede != "" {
		filter.Filters["sede"] = req.Sede
	}

	tickets, err := s.tickets.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	total, err := s.tickets.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	items := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		items[i] = *toTicketResponse(&t)
	}

	return &ListTicketsResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	}, nil
}

// DeleteTicket deletes a ticket
func (s *TicketService) DeleteTicket(ctx context.Context, ticketID uuid.UUID) error {
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Ticket not found")
		}
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	s.logger.Info("ticket deleted", zap.String("id", ticketID.String()))
	return nil
}

func toTicketResponse(t *ticketing.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:                 t.ID.String(),
		Numero:             t.Numero,
		NumeroFormatted:    t.FormattedNumero(),
		FechaHora:          t.FechaHora,
		EmpresaID:          t.Empresa.CompanyID.String(),
		EmpresaRazonSocial: t.Empresa.RazonSocial,
		EmpresaRUC:         t.Empresa.RUC,
		Sede:               t.Sede,
		NombrePersona:      t.NombrePersona,
		NumeroDocumento:    t.NumeroDocumento,
		TipoDocIdentidad:   t.TipoDocIdentidad,
		TipoPersona:        t.TipoPersona,
		VehiculoNroPlaca:   t.VehiculoNroPlaca,
		VehiculoMarca:      t.VehiculoMarca,
		VehiculoModelo:     t.VehiculoModelo,
		VehiculoColor:      t.VehiculoColor,
		TipoEquipo:         t.TipoEquipo,
		EquipoMarca:        t.EquipoMarca,
		EquipoSerie:        t.EquipoSerie,
		AreaDestino:        t.AreaDestino,
		PersonaDestino:     t.PersonaDestino,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
