package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	maintenanceapp "github.com/megui/backend/internal/application/maintenance"
)

// WorkOrderHandler handles maintenance work order endpoints
type WorkOrderHandler struct {
	BaseHandler
	workOrderService *maintenanceapp.WorkOrderService
}

// NewWorkOrderHandler creates a new WorkOrderHandler
func NewWorkOrderHandler(workOrderService *maintenanceapp.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// Create registers a new work order with its initial task list
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req maintenanceapp.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workOrderService.CreateWorkOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves a work order by its ID
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	result, err := h.workOrderService.GetWorkOrder(c.Request.Context(), workOrderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of work orders
func (h *WorkOrderHandler) List(c *gin.Context) {
	req := maintenanceapp.ListWorkOrdersRequest{
		Page:     1,
		PageSize: 20,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workOrderService.ListWorkOrders(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Size)
}

// AddTask appends a task row to a work order
func (h *WorkOrderHandler) AddTask(c *gin.Context) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	var req maintenanceapp.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workOrderService.AddTask(c.Request.Context(), workOrderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Start moves a planned work order into progress
func (h *WorkOrderHandler) Start(c *gin.Context) {
	h.transition(c, h.workOrderService.StartWorkOrder)
}

// Complete closes an in-progress work order with optional observations
func (h *WorkOrderHandler) Complete(c *gin.Context) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	var req maintenanceapp.CompleteWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workOrderService.CompleteWorkOrder(c.Request.Context(), workOrderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Cancel cancels a work order that has not been completed
func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.workOrderService.CancelWorkOrder)
}

// Delete removes a work order and its tasks
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	if err := h.workOrderService.DeleteWorkOrder(c.Request.Context(), workOrderID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *WorkOrderHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*maintenanceapp.WorkOrderResponse, error)) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	result, err := apply(c.Request.Context(), workOrderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
