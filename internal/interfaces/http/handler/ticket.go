package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ticketingapp "github.com/megui/backend/internal/application/ticketing"
)

// TicketHandler handles visitor access ticket endpoints
type TicketHandler struct {
	BaseHandler
	ticketService *ticketingapp.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService *ticketingapp.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// Create registers a visitor entry and assigns the next ticket numero
func (h *TicketHandler) Create(c *gin.Context) {
	var req ticketingapp.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.ticketService.CreateTicket(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves a ticket by its ID
func (h *TicketHandler) GetByID(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID format")
		return
	}

	result, err := h.ticketService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByNumero retrieves a ticket by its sequential numero
func (h *TicketHandler) GetByNumero(c *gin.Context) {
	numero, err := strconv.ParseInt(c.Param("numero"), 10, 64)
	if err != nil || numero <= 0 {
		h.BadRequest(c, "Invalid ticket numero")
		return
	}

	result, err := h.ticketService.GetTicketByNumero(c.Request.Context(), numero)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of tickets
func (h *TicketHandler) List(c *gin.Context) {
	req := ticketingapp.ListTicketsRequest{
		Page:     1,
		PageSize: 20,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.ticketService.ListTickets(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Size)
}

// Delete removes a ticket
func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID format")
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), ticketID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
