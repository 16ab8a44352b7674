// Package ticketing models gate access tickets: one record per visitor
// entry event, carrying the identity, vehicle, equipment and destination
// data printed on the thermal ticket.
package ticketing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
)

// CompanyInfo is the letterhead snapshot embedded in a ticket at creation
// time, so later company edits do not rewrite already issued tickets.
type CompanyInfo struct {
	CompanyID    uuid.UUID
	RazonSocial  string
	RUC          string
	Direccion    string
	Telefono     string
	Email        string
	LogoFilename string
}

// HasLogo reports whether the company had a logo configured when the
// ticket was issued.
func (c CompanyInfo) HasLogo() bool {
	return c.LogoFilename != ""
}

// Ticket is one access/visit event. Apart from the visitor identity all
// fields are optional; the printing layer renders only what is present.
type Ticket struct {
	shared.BaseAggregateRoot
	Numero    int64 // sequential display number, zero-padded to 8 digits
	FechaHora time.Time
	Empresa   CompanyInfo
	Sede      string

	NombrePersona    string
	NumeroDocumento  string
	TipoDocIdentidad string
	TipoPersona      string

	VehiculoNroPlaca string
	VehiculoMarca    string
	VehiculoModelo   string
	VehiculoColor    string

	TipoEquipo  string
	EquipoMarca string
	EquipoSerie string

	AreaDestino    string
	PersonaDestino string
}

// NewTicket creates a ticket for a visitor. Only the visitor identity is
// required; everything else is filled in by the caller as available.
func NewTicket(empresa CompanyInfo, nombrePersona, numeroDocumento string) (*Ticket, error) {
	if strings.TrimSpace(nombrePersona) == "" {
		return nil, shared.NewDomainError("INVALID_VISITOR", "Visitor name cannot be empty")
	}
	if strings.TrimSpace(numeroDocumento) == "" {
		return nil, shared.NewDomainError("INVALID_VISITOR", "Visitor document number cannot be empty")
	}

	t := &Ticket{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FechaHora:         time.Now(),
		Empresa:           empresa,
		NombrePersona:     strings.TrimSpace(nombrePersona),
		NumeroDocumento:   strings.TrimSpace(numeroDocumento),
	}
	t.AddDomainEvent(NewTicketCreatedEvent(t))
	return t, nil
}

// AssignNumero sets the sequential display number. It must be positive
// and may only be assigned once.
func (t *Ticket) AssignNumero(numero int64) error {
	if numero <= 0 {
		return shared.NewDomainError("INVALID_NUMERO", "Ticket number must be positive")
	}
	if t.Numero != 0 {
		return shared.NewDomainError("INVALID_STATE", "Ticket number already assigned")
	}
	t.Numero = numero
	return nil
}

// FormattedNumero returns the display number zero-padded to 8 digits,
// the form used wherever the ticket id appears as a machine-readable code.
func (t *Ticket) FormattedNumero() string {
	return fmt.Sprintf("%08d", t.Numero)
}

// BarcodeFallback returns the human-typed pseudo-barcode used when QR
// encoding is unavailable.
func (t *Ticket) BarcodeFallback() string {
	return "*" + t.FormattedNumero() + "*"
}

// HasVehicle reports whether the vehicle section should be printed.
// Presence of a plate number is the deciding field.
func (t *Ticket) HasVehicle() bool {
	return t.VehiculoNroPlaca != ""
}

// HasEquipment reports whether the equipment section should be printed.
func (t *Ticket) HasEquipment() bool {
	return t.TipoEquipo != "" || t.EquipoMarca != "" || t.EquipoSerie != ""
}
