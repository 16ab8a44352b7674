package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	printingapp "github.com/megui/backend/internal/application/printing"
)

// PrintHandler handles PDF generation and job endpoints
type PrintHandler struct {
	BaseHandler
	printService *printingapp.PrintService
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *printingapp.PrintService) *PrintHandler {
	return &PrintHandler{
		printService: printService,
	}
}

// GenerateTicketPDF generates the 80mm access ticket for a ticket record
func (h *PrintHandler) GenerateTicketPDF(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID format")
		return
	}

	result, err := h.printService.GenerateTicketPDF(c.Request.Context(), ticketID, h.requester(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GenerateWorkOrderPDF generates the paginated A4 document for a work order
func (h *PrintHandler) GenerateWorkOrderPDF(c *gin.Context) {
	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	result, err := h.printService.GenerateWorkOrderPDF(c.Request.Context(), workOrderID, h.requester(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// requester resolves the authenticated user behind the request. Service
// tokens carry no user UUID, so the requester may be empty.
func (h *PrintHandler) requester(c *gin.Context) uuid.UUID {
	userID, err := getUserID(c)
	if err != nil {
		return uuid.Nil
	}
	return userID
}

// GetJob retrieves a generation job by ID
func (h *PrintHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	result, err := h.printService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListJobs retrieves a paginated list of generation jobs
func (h *PrintHandler) ListJobs(c *gin.Context) {
	req := printingapp.ListJobsRequest{
		Page:     1,
		PageSize: 20,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.printService.ListJobs(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Size)
}

// GetJobsByDocument retrieves generation jobs for a specific document
func (h *PrintHandler) GetJobsByDocument(c *gin.Context) {
	docType := c.Param("doc_type")
	if docType == "" {
		h.BadRequest(c, "Document type is required")
		return
	}

	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	result, err := h.printService.GetJobsByDocument(c.Request.Context(), docType, documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// DownloadPDF streams the stored PDF of a completed job
func (h *PrintHandler) DownloadPDF(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	reader, job, err := h.printService.DownloadPDF(c.Request.Context(), jobID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+job.DocumentNumber+`.pdf"`)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.InternalError(c, "Failed to stream PDF file")
		return
	}
}

// GetDocumentTypes retrieves all printable document types
func (h *PrintHandler) GetDocumentTypes(c *gin.Context) {
	h.Success(c, h.printService.GetDocumentTypes())
}
