package ticketing

import (
	"time"

	"github.com/google/uuid"
)

// CreateTicketRequest represents a request to register a visitor entry
type CreateTicketRequest struct {
	EmpresaID       uuid.UUID `json:"empresa_id" binding:"required"`
	Sede            string    `json:"sede" binding:"max=100"`
	NombrePersona   string    `json:"nombre_persona" binding:"required,min=1,max=200"`
	NumeroDocumento string    `json:"numero_documento" binding:"required,min=1,max=20"`

	TipoDocIdentidad string `json:"tipo_doc_identidad" binding:"max=20"`
	TipoPersona      string `json:"tipo_persona" binding:"max=50"`

	VehiculoNroPlaca string `json:"vehiculo_nro_placa" binding:"max=10"`
	VehiculoMarca    string `json:"vehiculo_marca" binding:"max=50"`
	VehiculoModelo   string `json:"vehiculo_modelo" binding:"max=50"`
	VehiculoColor    string `json:"vehiculo_color" binding:"max=30"`

	TipoEquipo  string `json:"tipo_equipo" binding:"max=50"`
	EquipoMarca string `json:"equipo_marca" binding:"max=50"`
	EquipoSerie string `json:"equipo_serie" binding:"max=50"`

	AreaDestino    string `json:"area_destino" binding:"max=100"`
	PersonaDestino string `json:"persona_destino" binding:"max=200"`
}

// ListTicketsRequest represents a request to list tickets
type ListTicketsRequest struct {
	Page      int    `form:"page" binding:"min=1"`
	PageSize  int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	EmpresaID string `form:"empresa_id"`
	Sede      string `form:"sede"`
}

// TicketResponse represents a ticket response
type TicketResponse struct {
	ID              string    `json:"id"`
	Numero          int64     `json:"numero"`
	NumeroFormatted string    `json:"numero_formatted"`
	FechaHora       time.Time `json:"fecha_hora"`

	EmpresaID          string `json:"empresa_id"`
	EmpresaRazonSocial string `json:"empresa_razon_social"`
	EmpresaRUC         string `json:"empresa_ruc"`
	Sede               string `json:"sede,omitempty"`

	NombrePersona    string `json:"nombre_persona"`
	NumeroDocumento  string `json:"numero_documento"`
	TipoDocIdentidad string `json:"tipo_doc_identidad,omitempty"`
	TipoPersona      string `json:"tipo_persona,omitempty"`

	VehiculoNroPlaca string `json:"vehiculo_nro_placa,omitempty"`
	VehiculoMarca    string `json:"vehiculo_marca,omitempty"`
	VehiculoModelo   string `json:"vehiculo_modelo,omitempty"`
	VehiculoColor    string `json:"vehiculo_color,omitempty"`

	TipoEquipo  string `json:"tipo_equipo,omitempty"`
	EquipoMarca string `json:"equipo_marca,omitempty"`
	EquipoSerie string `json:"equipo_serie,omitempty"`

	AreaDestino    string `json:"area_destino,omitempty"`
	PersonaDestino string `json:"persona_destino,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListTicketsResponse represents a paginated list of tickets
type ListTicketsResponse struct {
	Items []TicketResponse `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}
