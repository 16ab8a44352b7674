// Package maintenance orchestrates work order management.
package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WorkOrderService handles work order business operations
type WorkOrderService struct {
	workOrders maintenance.Repository
	logger     *zap.Logger
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(workOrders maintenance.Repository, logger *zap.Logger) *WorkOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderService{
		workOrders: workOrders,
		logger:     logger,
	}
}

// CreateWorkOrder creates a planned work order with its task rows
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	existing, err := s.workOrders.FindByCodigo(ctx, req.Codigo)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to check work order code: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A work order with this code already exists")
	}

	wo, err := maintenance.NewWorkOrder(req.Codigo, req.Titulo, req.FechaProgr)
	if err != nil {
		return nil, err
	}

	wo.Descripcion = req.Descripcion
	wo.Equipo = req.Equipo
	wo.Ubicacion = req.Ubicacion
	wo.Solicitante = req.Solicitante
	wo.Responsable = req.Responsable
	wo.Observaciones = req.Observaciones

	for _, task := range req.Tasks {
		horas, costo, err := parseTaskAmounts(task.Horas, task.Costo)
		if err != nil {
			return nil, err
		}
		if err := wo.AddTask(task.Descripcion, task.Responsable, horas, costo); err != nil {
			return nil, err
		}
	}

	if err := s.workOrders.Save(ctx, wo); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}

	s.logger.Info("work order created",
		zap.String("id", wo.ID.String()),
		zap.String("codigo", wo.Codigo),
		zap.Int("tasks", len(wo.Tasks)))

	return toWorkOrderResponse(wo), nil
}

// GetWorkOrder retrieves a work order by ID
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, workOrderID uuid.UUID) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// ListWorkOrders retrieves a paginated list of work orders
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, req ListWorkOrdersRequest) (*ListWorkOrdersResponse, error) {
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  map[string]interface{}{},
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}
	if req.Equipo != "" {
		filter.Filters["equipo"] = req.Equipo
	}

	orders, err := s.workOrders.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	total, err := s.workOrders.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count work orders: %w", err)
	}

	items := make([]WorkOrderResponse, len(orders))
	for i, wo := range orders {
		items[i] = *toWorkOrderResponse(&wo)
	}

	return &ListWorkOrdersResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	}, nil
}

// AddTask appends a task row to an existing work order
func (s *WorkOrderService) AddTask(ctx context.Context, workOrderID uuid.UUID, req AddTaskRequest) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	horas, costo, err := parseTaskAmounts(req.Horas, req.Costo)
	if err != nil {
		return nil, err
	}
	if err := wo.AddTask(req.Descripcion, req.Responsable, horas, costo); err != nil {
		return nil, err
	}

	if err := s.workOrders.Save(ctx, wo); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}

	return toWorkOrderResponse(wo), nil
}

// StartWorkOrder moves a planned work order into progress
func (s *WorkOrderService) StartWorkOrder(ctx context.Context, workOrderID uuid.UUID) (*WorkOrderResponse, error) {
	return s.transition(ctx, workOrderID, func(wo *maintenance.WorkOrder) error {
		return wo.Start()
	})
}

// CompleteWorkOrder finishes an in-progress work order
func (s *WorkOrderService) CompleteWorkOrder(ctx context.Context, workOrderID uuid.UUID, req CompleteWorkOrderRequest) (*WorkOrderResponse, error) {
	return s.transition(ctx, workOrderID, func(wo *maintenance.WorkOrder) error {
		return wo.Complete(req.Observaciones)
	})
}

// CancelWorkOrder aborts a work order
func (s *WorkOrderService) CancelWorkOrder(ctx context.Context, workOrderID uuid.UUID) (*WorkOrderResponse, error) {
	return s.transition(ctx, workOrderID, func(wo *maintenance.WorkOrder) error {
		return wo.Cancel()
	})
}

// DeleteWorkOrder deletes a work order and its tasks
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, workOrderID uuid.UUID) error {
	if err := s.workOrders.Delete(ctx, workOrderID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Work order not found")
		}
		return fmt.Errorf("failed to delete work order: %w", err)
	}

	s.logger.Info("work order deleted", zap.String("id", workOrderID.String()))
	return nil
}

func (s *WorkOrderService) transition(ctx context.Context, workOrderID uuid.UUID, apply func(*maintenance.WorkOrder) error) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	if err := apply(wo); err != nil {
		return nil, err
	}

	if err := s.workOrders.Save(ctx, wo); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}

	s.logger.Info("work order status changed",
		zap.String("id", wo.ID.String()),
		zap.String("status", string(wo.Status)))

	return toWorkOrderResponse(wo), nil
}

func (s *WorkOrderService) findWorkOrder(ctx context.Context, workOrderID uuid.UUID) (*maintenance.WorkOrder, error) {
	wo, err := s.workOrders.FindByID(ctx, workOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Work order not found")
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return wo, nil
}

func parseTaskAmounts(horas, costo string) (decimal.Decimal, decimal.Decimal, error) {
	h, err := parseAmount(horas)
	if err != nil {
		return decimal.Zero, decimal.Zero, shared.NewDomainError("INVALID_TASK", "Task hours must be a decimal number")
	}
	c, err := parseAmount(costo)
	if err != nil {
		return decimal.Zero, decimal.Zero, shared.NewDomainError("INVALID_TASK", "Task cost must be a decimal number")
	}
	return h, c, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func toWorkOrderResponse(wo *maintenance.WorkOrder) *WorkOrderResponse {
	tasks := make([]TaskResponse, len(wo.Tasks))
	for i, t := range wo.Tasks {
		tasks[i] = TaskResponse{
			ID:          t.ID.String(),
			Descripcion: t.Descripcion,
			Responsable: t.Responsable,
			Horas:       t.Horas.StringFixed(2),
			Costo:       t.Costo.StringFixed(2),
		}
	}

	return &WorkOrderResponse{
		ID:            wo.ID.String(),
		Codigo:        wo.Codigo,
		Titulo:        wo.Titulo,
		Descripcion:   wo.Descripcion,
		Equipo:        wo.Equipo,
		Ubicacion:     wo.Ubicacion,
		Solicitante:   wo.Solicitante,
		Responsable:   wo.Responsable,
		Status:        string(wo.Status),
		FechaProgr:    wo.FechaProgr,
		Observaciones: wo.Observaciones,
		Tasks:         tasks,
		TotalHoras:    wo.TotalHoras().StringFixed(2),
		TotalCosto:    wo.TotalCosto().StringFixed(2),
		CreatedAt:     wo.CreatedAt,
		UpdatedAt:     wo.UpdatedAt,
	}
}
