package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/ticketing"
)

// TicketModel maps the ticket aggregate to the tickets table. The
// company letterhead is embedded as a snapshot.
type TicketModel struct {
	AggregateModel
	Numero    int64     `gorm:"uniqueIndex"`
	FechaHora time.Time `gorm:"not null;index"`

	EmpresaID           uuid.UUID `gorm:"type:uuid;not null;index"`
	EmpresaRazonSocial  string    `gorm:"not null"`
	EmpresaRUC          string    `gorm:"column:empresa_ruc;not null"`
	EmpresaDireccion    string
	EmpresaTelefono     string
	EmpresaEmail        string
	EmpresaLogoFilename string
	Sede                string

	NombrePersona    string `gorm:"not null"`
	NumeroDocumento  string `gorm:"not null;index"`
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

// TableName returns the table name for TicketModel
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts the model to a domain Ticket
func (m *TicketModel) ToDomain() *ticketing.Ticket {
	t := &ticketing.Ticket{
		Numero:    m.Numero,
		FechaHora: m.FechaHora,
		Empresa: ticketing.CompanyInfo{
			CompanyID:    m.EmpresaID,
			RazonSocial:  m.EmpresaRazonSocial,
			RUC:          m.EmpresaRUC,
			Direccion:    m.EmpresaDireccion,
			Telefono:     m.EmpresaTelefono,
			Email:        m.EmpresaEmail,
			LogoFilename: m.EmpresaLogoFilename,
		},
		Sede:             m.Sede,
		NombrePersona:    m.NombrePersona,
		NumeroDocumento:  m.NumeroDocumento,
		TipoDocIdentidad: m.TipoDocIdentidad,
		TipoPersona:      m.TipoPersona,
		VehiculoNroPlaca: m.VehiculoNroPlaca,
		VehiculoMarca:    m.VehiculoMarca,
		VehiculoModelo:   m.VehiculoModelo,
		VehiculoColor:    m.VehiculoColor,
		TipoEquipo:       m.TipoEquipo,
		EquipoMarca:      m.EquipoMarca,
		EquipoSerie:      m.EquipoSerie,
		AreaDestino:      m.AreaDestino,
		PersonaDestino:   m.PersonaDestino,
	}
	m.PopulateAggregateRoot(&t.BaseAggregateRoot)
	return t
}

// TicketModelFromDomain builds the model from a domain Ticket
func TicketModelFromDomain(t *ticketing.Ticket) *TicketModel {
	m := &TicketModel{
		Numero:              t.Numero,
		FechaHora:           t.FechaHora,
		EmpresaID:           t.Empresa.CompanyID,
		EmpresaRazonSocial:  t.Empresa.RazonSocial,
		EmpresaRUC:          t.Empresa.RUC,
		EmpresaDireccion:    t.Empresa.Direccion,
		EmpresaTelefono:     t.Empresa.Telefono,
		EmpresaEmail:        t.Empresa.Email,
		EmpresaLogoFilename: t.Empresa.LogoFilename,
		Sede:                t.Sede,
		NombrePersona:       t.NombrePersona,
		NumeroDocumento:     t.NumeroDocumento,
		TipoDocIdentidad:    t.TipoDocIdentidad,
		TipoPersona:         t.TipoPersona,
		VehiculoNroPlaca:    t.VehiculoNroPlaca,
		VehiculoMarca:       t.VehiculoMarca,
		VehiculoModelo:      t.VehiculoModelo,
		VehiculoColor:       t.VehiculoColor,
		TipoEquipo:          t.TipoEquipo,
		EquipoMarca:         t.EquipoMarca,
		EquipoSerie:         t.EquipoSerie,
		AreaDestino:         t.AreaDestino,
		PersonaDestino:      t.PersonaDestino,
	}
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	return m
}
