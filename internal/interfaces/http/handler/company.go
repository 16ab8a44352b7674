package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	companyapp "github.com/megui/backend/internal/application/company"
	"github.com/megui/backend/internal/interfaces/http/middleware"
)

// CompanyHandler handles empresa master-data endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *companyapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *companyapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Create registers a new empresa
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves an empresa by its ID
func (h *CompanyHandler) GetByID(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid empresa ID format")
		return
	}

	result, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByRUC retrieves an empresa by its RUC
func (h *CompanyHandler) GetByRUC(c *gin.Context) {
	ruc := c.Param("ruc")
	if ruc == "" {
		h.BadRequest(c, "RUC is required")
		return
	}

	result, err := h.companyService.GetCompanyByRUC(c.Request.Context(), ruc)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of empresas
func (h *CompanyHandler) List(c *gin.Context) {
	req := companyapp.ListCompaniesRequest{
		Page:     1,
		PageSize: 20,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.companyService.ListCompanies(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Size)
}

// UpdateContact updates the contact fields of an empresa
func (h *CompanyHandler) UpdateContact(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid empresa ID format")
		return
	}

	var req companyapp.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.companyService.UpdateContact(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// SetLogo records the stored logo of an empresa
func (h *CompanyHandler) SetLogo(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid empresa ID format")
		return
	}

	var req companyapp.SetLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.companyService.SetLogo(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an empresa
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid empresa ID format")
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), companyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
