package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/megui/backend/internal/interfaces/http/router"
)

// TicketRoutes creates the route group for access ticket endpoints
func TicketRoutes(h *TicketHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/tickets")

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.GET("/numero/:numero", h.GetByNumero)
	group.DELETE("/:id", h.Delete)

	return group
}

// WorkOrderRoutes creates the route group for maintenance work orders
func WorkOrderRoutes(h *WorkOrderHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/work-orders")

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.POST("/:id/tasks", h.AddTask)
	group.POST("/:id/start", h.Start)
	group.POST("/:id/complete", h.Complete)
	group.POST("/:id/cancel", h.Cancel)
	group.DELETE("/:id", h.Delete)

	return group
}

// CompanyRoutes creates the route group for empresa master data
func CompanyRoutes(h *CompanyHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/empresas")

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.GET("/ruc/:ruc", h.GetByRUC)
	group.PUT("/:id/contact", h.UpdateContact)
	group.PUT("/:id/logo", h.SetLogo)
	group.DELETE("/:id", h.Delete)

	return group
}

// PrintRoutes creates the route group for PDF generation and jobs
func PrintRoutes(h *PrintHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/print")

	// PDF generation
	group.POST("/tickets/:id", h.GenerateTicketPDF)
	group.POST("/work-orders/:id", h.GenerateWorkOrderPDF)

	// Generation jobs
	group.GET("/jobs", h.ListJobs)
	group.GET("/jobs/:id", h.GetJob)
	group.GET("/jobs/:id/download", h.DownloadPDF)
	group.GET("/jobs/by-document/:doc_type/:document_id", h.GetJobsByDocument)

	// Reference data
	group.GET("/document-types", h.GetDocumentTypes)

	return group
}

// GeoRoutes creates the route group for coordinate conversion
func GeoRoutes(h *GeoHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/geo")

	group.POST("/to-dms", h.ToDMS)
	group.POST("/to-decimal", h.ToDecimal)
	group.POST("/validate", h.Validate)
	group.GET("/position", h.CapturePosition)

	return group
}

// SystemRoutes creates the route group for system endpoints
func SystemRoutes(h *SystemHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/system")

	group.GET("/info", h.GetSystemInfo)

	return group
}

// RegisterHealth mounts the unauthenticated liveness endpoint
func RegisterHealth(engine *gin.Engine, h *SystemHandler) {
	engine.GET("/health", h.Health)
	engine.GET("/api/v1/health", h.Health)
}
