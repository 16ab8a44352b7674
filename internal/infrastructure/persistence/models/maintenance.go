package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WorkOrderModel maps the work order aggregate to the work_orders table.
type WorkOrderModel struct {
	AggregateModel
	Codigo        string `gorm:"uniqueIndex;not null"`
	Titulo        string `gorm:"not null"`
	Descripcion   string
	Equipo        string
	Ubicacion     string
	Solicitante   string
	Responsable   string
	Status        string `gorm:"not null;default:'PLANNED';index"`
	FechaProgr    time.Time
	Observaciones string
	Tasks         []WorkOrderTaskModel `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkOrderModel
func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// WorkOrderTaskModel maps one task row to the work_order_tasks table.
type WorkOrderTaskModel struct {
	BaseModel
	WorkOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Descripcion string          `gorm:"not null"`
	Responsable string
	Horas       decimal.Decimal `gorm:"type:decimal(8,2)"`
	Costo       decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for WorkOrderTaskModel
func (WorkOrderTaskModel) TableName() string {
	return "work_order_tasks"
}

// ToDomain converts the model to a domain WorkOrder
func (m *WorkOrderModel) ToDomain() *maintenance.WorkOrder {
	w := &maintenance.WorkOrder{
		Codigo:        m.Codigo,
		Titulo:        m.Titulo,
		Descripcion:   m.Descripcion,
		Equipo:        m.Equipo,
		Ubicacion:     m.Ubicacion,
		Solicitante:   m.Solicitante,
		Responsable:   m.Responsable,
		Status:        maintenance.WorkOrderStatus(m.Status),
		FechaProgr:    m.FechaProgr,
		Observaciones: m.Observaciones,
	}
	m.PopulateAggregateRoot(&w.BaseAggregateRoot)

	w.Tasks = make([]maintenance.Task, len(m.Tasks))
	for i, tm := range m.Tasks {
		w.Tasks[i] = maintenance.Task{
			BaseEntity: shared.BaseEntity{
				ID:        tm.ID,
				CreatedAt: tm.CreatedAt,
				UpdatedAt: tm.UpdatedAt,
			},
			WorkOrderID: tm.WorkOrderID,
			Descripcion: tm.Descripcion,
			Responsable: tm.Responsable,
			Horas:       tm.Horas,
			Costo:       tm.Costo,
		}
	}
	return w
}

// WorkOrderModelFromDomain builds the model from a domain WorkOrder
func WorkOrderModelFromDomain(w *maintenance.WorkOrder) *WorkOrderModel {
	m := &WorkOrderModel{
		Codigo:        w.Codigo,
		Titulo:        w.Titulo,
		Descripcion:   w.Descripcion,
		Equipo:        w.Equipo,
		Ubicacion:     w.Ubicacion,
		Solicitante:   w.Solicitante,
		Responsable:   w.Responsable,
		Status:        string(w.Status),
		FechaProgr:    w.FechaProgr,
		Observaciones: w.Observaciones,
	}
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)

	m.Tasks = make([]WorkOrderTaskModel, len(w.Tasks))
	for i, task := range w.Tasks {
		tm := WorkOrderTaskModel{
			WorkOrderID: w.ID,
			Descripcion: task.Descripcion,
			Responsable: task.Responsable,
			Horas:       task.Horas,
			Costo:       task.Costo,
		}
		tm.FromDomainBaseEntity(task.BaseEntity)
		m.Tasks[i] = tm
	}
	return m
}
