package handler

import (
	"github.com/gin-gonic/gin"
	geoapp "github.com/megui/backend/internal/application/geo"
)

// GeoHandler handles coordinate conversion and position capture endpoints
type GeoHandler struct {
	BaseHandler
	geoService *geoapp.Service
}

// NewGeoHandler creates a new GeoHandler
func NewGeoHandler(geoService *geoapp.Service) *GeoHandler {
	return &GeoHandler{
		geoService: geoService,
	}
}

// ToDMS converts a decimal coordinate pair to DMS notation
func (h *GeoHandler) ToDMS(c *gin.Context) {
	var req geoapp.ConvertToDMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.geoService.ToDMS(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ToDecimal converts a DMS coordinate pair to decimal degrees
func (h *GeoHandler) ToDecimal(c *gin.Context) {
	var req geoapp.ConvertToDecimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.geoService.ToDecimal(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Validate checks a decimal coordinate pair and reports each violation
func (h *GeoHandler) Validate(c *gin.Context) {
	var req geoapp.ConvertToDMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.Success(c, h.geoService.Validate(req))
}

// CapturePosition obtains the current position from the configured provider
func (h *GeoHandler) CapturePosition(c *gin.Context) {
	result, err := h.geoService.CapturePosition(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
