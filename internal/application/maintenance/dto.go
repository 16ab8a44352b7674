package maintenance

import (
	"time"
)

// CreateWorkOrderRequest represents a request to create a work order
type CreateWorkOrderRequest struct {
	Codigo        string    `json:"codigo" binding:"required,min=1,max=50"`
	Titulo        string    `json:"titulo" binding:"required,min=1,max=200"`
	Descripcion   string    `json:"descripcion" binding:"max=2000"`
	Equipo        string    `json:"equipo" binding:"max=100"`
	Ubicacion     string    `json:"ubicacion" binding:"max=100"`
	Solicitante   string    `json:"solicitante" binding:"max=200"`
	Responsable   string    `json:"responsable" binding:"max=200"`
	FechaProgr    time.Time `json:"fecha_progr" binding:"required"`
	Observaciones string    `json:"observaciones" binding:"max=2000"`
	Tasks         []TaskDTO `json:"tasks" binding:"max=200,dive"`
}

// TaskDTO represents one task row of a work order
type TaskDTO struct {
	Descripcion string `json:"descripcion" binding:"required,min=1,max=500"`
	Responsable string `json:"responsable" binding:"max=200"`
	Horas       string `json:"horas" binding:"omitempty,numeric"`
	Costo       string `json:"costo" binding:"omitempty,numeric"`
}

// AddTaskRequest represents a request to append a task to a work order
type AddTaskRequest struct {
	Descripcion string `json:"descripcion" binding:"required,min=1,max=500"`
	Responsable string `json:"responsable" binding:"max=200"`
	Horas       string `json:"horas" binding:"omitempty,numeric"`
	Costo       string `json:"costo" binding:"omitempty,numeric"`
}

// CompleteWorkOrderRequest carries closing notes for completion
type CompleteWorkOrderRequest struct {
	Observaciones string `json:"observaciones" binding:"max=2000"`
}

// ListWorkOrdersRequest represents a request to list work orders
type ListWorkOrdersRequest struct {
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Status   string `form:"status"`
	Equipo   string `form:"equipo"`
}

// TaskResponse represents a task row in responses
type TaskResponse struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
	Responsable string `json:"responsable,omitempty"`
	Horas       string `json:"horas"`
	Costo       string `json:"costo"`
}

// WorkOrderResponse represents a work order response
type WorkOrderResponse struct {
	ID            string         `json:"id"`
	Codigo        string         `json:"codigo"`
	Titulo        string         `json:"titulo"`
	Descripcion   string         `json:"descripcion,omitempty"`
	Equipo        string         `json:"equipo,omitempty"`
	Ubicacion     string         `json:"ubicacion,omitempty"`
	Solicitante   string         `json:"solicitante,omitempty"`
	Responsable   string         `json:"responsable,omitempty"`
	Status        string         `json:"status"`
	FechaProgr    time.Time      `json:"fecha_progr"`
	Observaciones string         `json:"observaciones,omitempty"`
	Tasks         []TaskResponse `json:"tasks"`
	TotalHoras    string         `json:"total_horas"`
	TotalCosto    string         `json:"total_costo"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ListWorkOrdersResponse represents a paginated list of work orders
type ListWorkOrdersResponse struct {
	Items []WorkOrderResponse `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Size  int                 `json:"size"`
}
