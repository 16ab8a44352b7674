// Package maintenance models work orders: scheduled maintenance jobs
// with a task breakdown that is printed as a paginated A4 document.
package maintenance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus is the lifecycle state of a work order.
type WorkOrderStatus string

const (
	StatusPlanned    WorkOrderStatus = "PLANNED"
	StatusInProgress WorkOrderStatus = "IN_PROGRESS"
	StatusCompleted  WorkOrderStatus = "COMPLETED"
	StatusCancelled  WorkOrderStatus = "CANCELLED"
)

// IsValid checks whether the status is one of the known states.
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Task is one row of a work order's task table.
type Task struct {
	shared.BaseEntity
	WorkOrderID uuid.UUID
	Descripcion string
	Responsable string
	Horas       decimal.Decimal
	Costo       decimal.Decimal
}

// WorkOrder is a maintenance job with its task breakdown.
type WorkOrder struct {
	shared.BaseAggregateRoot
	Codigo        string
	Titulo        string
	Descripcion   string
	Equipo        string
	Ubicacion     string
	Solicitante   string
	Responsable   string
	Status        WorkOrderStatus
	FechaProgr    time.Time
	Observaciones string
	Tasks         []Task
}

// NewWorkOrder creates a planned work order.
func NewWorkOrder(codigo, titulo string, fechaProgr time.Time) (*WorkOrder, error) {
	codigo = strings.TrimSpace(codigo)
	titulo = strings.TrimSpace(titulo)
	if codigo == "" {
		return nil, shared.NewDomainError("INVALID_WORK_ORDER", "Work order code cannot be empty")
	}
	if titulo == "" {
		return nil, shared.NewDomainError("INVALID_WORK_ORDER", "Work order title cannot be empty")
	}

	wo := &WorkOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Codigo:            codigo,
		Titulo:            titulo,
		Status:            StatusPlanned,
		FechaProgr:        fechaProgr,
	}
	wo.AddDomainEvent(NewWorkOrderCreatedEvent(wo))
	return wo, nil
}

// AddTask appends a task row. Hours and cost must not be negative.
func (w *WorkOrder) AddTask(descripcion, responsable string, horas, costo decimal.Decimal) error {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return shared.NewDomainError("INVALID_TASK", "Task description cannot be empty")
	}
	if horas.IsNegative() || costo.IsNegative() {
		return shared.NewDomainError("INVALID_TASK", "Task hours and cost cannot be negative")
	}

	w.Tasks = append(w.Tasks, Task{
		BaseEntity:  shared.NewBaseEntity(),
		WorkOrderID: w.ID,
		Descripcion: descripcion,
		Responsable: strings.TrimSpace(responsable),
		Horas:       horas,
		Costo:       costo,
	})
	return nil
}

// TotalHoras sums the hours of all task rows.
func (w *WorkOrder) TotalHoras() decimal.Decimal {
	total := decimal.Zero
	for _, t := range w.Tasks {
		total = total.Add(t.Horas)
	}
	return total
}

// TotalCosto sums the cost of all task rows.
func (w *WorkOrder) TotalCosto() decimal.Decimal {
	total := decimal.Zero
	for _, t := range w.Tasks {
		total = total.Add(t.Costo)
	}
	return total
}

// Start moves a planned work order into progress.
func (w *WorkOrder) Start() error {
	if w.Status != StatusPlanned {
		return shared.NewDomainError("INVALID_STATE", "Only planned work orders can be started")
	}
	w.Status = StatusInProgress
	return nil
}

// Complete finishes an in-progress work order, recording observations.
func (w *WorkOrder) Complete(observaciones string) error {
	if w.Status != StatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Only in-progress work orders can be completed")
	}
	w.Status = StatusCompleted
	w.Observaciones = strings.TrimSpace(observaciones)
	return nil
}

// Cancel aborts a work order that has not completed.
func (w *WorkOrder) Cancel() error {
	if w.Status == StatusCompleted || w.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Completed or cancelled work orders cannot be cancelled")
	}
	w.Status = StatusCancelled
	return nil
}
