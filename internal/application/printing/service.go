// Package printing orchestrates PDF generation for tickets and work
// orders: each generation runs under a per-document lock, is tracked as
// a job, and ends with the PDF stored and the job completed or failed.
package printing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/maintenance"
	"github.com/megui/backend/internal/domain/printing"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/domain/ticketing"
	"github.com/megui/backend/internal/infrastructure/lock"
	"github.com/megui/backend/internal/infrastructure/pdf"
	"github.com/megui/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// Module names used to group stored PDFs by origin.
const (
	ModuleTickets    = "tickets"
	ModuleWorkOrders = "work-orders"
)

// PrintService handles PDF generation and job tracking
type PrintService struct {
	tickets       ticketing.Repository
	workOrders    maintenance.Repository
	jobs          printing.JobRepository
	ticketBuilder *pdf.TicketBuilder
	woBuilder     *pdf.WorkOrderBuilder
	renderer      *pdf.Renderer
	pdfStorage    storage.PDFStorage
	guard         lock.Guard
	lockTTL       time.Duration
	logger        *zap.Logger
}

// NewPrintService creates a new PrintService
func NewPrintService(
	tickets ticketing.Repository,
	workOrders maintenance.Repository,
	jobs printing.JobRepository,
	ticketBuilder *pdf.TicketBuilder,
	woBuilder *pdf.WorkOrderBuilder,
	renderer *pdf.Renderer,
	pdfStorage storage.PDFStorage,
	guard lock.Guard,
	lockTTL time.Duration,
	logger *zap.Logger,
) *PrintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &PrintService{
		tickets:       tickets,
		workOrders:    workOrders,
		jobs:          jobs,
		ticketBuilder: ticketBuilder,
		woBuilder:     woBuilder,
		renderer:      renderer,
		pdfStorage:    pdfStorage,
		guard:         guard,
		lockTTL:       lockTTL,
		logger:        logger,
	}
}

// GenerateTicketPDF generates the thermal access ticket for a ticket
// record. A second request for the same ticket while one is running is
// rejected with GENERATION_IN_FLIGHT.
func (s *PrintService) GenerateTicketPDF(ctx context.Context, ticketID, userID uuid.UUID) (*PrintJobResponse, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	release, err := s.acquire(ctx, "ticket:"+ticketID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	return s.generate(ctx, printing.DocTypeAccessTicket, ticket.ID, ticket.FormattedNumero(), userID, ModuleTickets,
		func() (*pdf.Document, error) {
			return s.ticketBuilder.Build(ctx, ticket)
		})
}

// GenerateWorkOrderPDF generates the paginated A4 document for a work
// order, including its full task table.
func (s *PrintService) GenerateWorkOrderPDF(ctx context.Context, workOrderID, userID uuid.UUID) (*PrintJobResponse, error) {
	wo, err := s.workOrders.FindByID(ctx, workOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Work order not found")
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	release, err := s.acquire(ctx, "workorder:"+workOrderID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	return s.generate(ctx, printing.DocTypeWorkOrder, wo.ID, wo.Codigo, userID, ModuleWorkOrders,
		func() (*pdf.Document, error) {
			return s.woBuilder.Build(wo)
		})
}

// acquire takes the per-document generation lock and returns its
// release function.
func (s *PrintService) acquire(ctx context.Context, key string) (func(), error) {
	ok, err := s.guard.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire generation lock: %w", err)
	}
	if !ok {
		return nil, shared.ErrGenerationInFlight
	}
	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), key); err != nil {
			s.logger.Warn("failed to release generation lock",
				zap.String("key", key),
				zap.Error(err))
		}
	}, nil
}

// generate runs the job lifecycle around the layout/render/store steps.
func (s *PrintService) generate(
	ctx context.Context,
	docType printing.DocType,
	documentID uuid.UUID,
	documentNumber string,
	userID uuid.UUID,
	moduleName string,
	build func() (*pdf.Document, error),
) (*PrintJobResponse, error) {
	job, err := printing.NewPrintJob(docType, documentID, documentNumber, userID)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	if err := job.StartRendering(); err != nil {
		return nil, err
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	doc, err := build()
	if err != nil {
		s.fail(ctx, job, "Document layout failed.", err)
		return nil, fmt.Errorf("failed to lay out document: %w", err)
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		s.fail(ctx, job, "PDF generation failed. Please try again later.", err)
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	storeResult, err := s.pdfStorage.Store(ctx, &storage.StoreRequest{
		JobID:          job.ID,
		DocumentNumber: documentNumber,
		ModuleName:     moduleName,
		PDFData:        data,
	})
	if err != nil {
		s.fail(ctx, job, "Failed to save PDF file. Please try again later.", err)
		return nil, fmt.Errorf("failed to store PDF: %w", err)
	}

	if err := job.Complete(storeResult.URL); err != nil {
		return nil, err
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	s.logger.Info("PDF generated",
		zap.String("jobId", job.ID.String()),
		zap.String("docType", string(docType)),
		zap.String("documentNumber", documentNumber),
		zap.String("url", storeResult.URL))

	return toJobResponse(job), nil
}

func (s *PrintService) fail(ctx context.Context, job *printing.PrintJob, message string, cause error) {
	s.logger.Error("PDF generation failed",
		zap.String("jobId", job.ID.String()),
		zap.Error(cause))
	_ = job.Fail(message)
	_ = s.jobs.Save(ctx, job)
}

// GetJob retrieves a generation job by ID
func (s *PrintService) GetJob(ctx context.Context, jobID uuid.UUID) (*PrintJobResponse, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Job not found")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return toJobResponse(job), nil
}

// ListJobs retrieves a paginated list of generation jobs
func (s *PrintService) ListJobs(ctx context.Context, req ListJobsRequest) (*ListJobsResponse, error) {
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Filters:  map[string]interface{}{},
	}
	if req.DocType != "" {
		filter.Filters["document_type"] = req.DocType
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}

	jobs, err := s.jobs.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	total, err := s.jobs.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	items := make([]PrintJobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = *toJobResponse(&j)
	}

	return &ListJobsResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	}, nil
}

// GetJobsByDocument retrieves generation jobs for a specific document
func (s *PrintService) GetJobsByDocument(ctx context.Context, docType string, documentID uuid.UUID) ([]PrintJobResponse, error) {
	dt := printing.DocType(docType)
	if !dt.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid document type")
	}

	jobs, err := s.jobs.FindByDocument(ctx, dt, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	result := make([]PrintJobResponse, len(jobs))
	for i, j := range jobs {
		result[i] = *toJobResponse(&j)
	}
	return result, nil
}

// DownloadPDF opens the stored PDF of a completed job
func (s *PrintService) DownloadPDF(ctx context.Context, jobID uuid.UUID) (io.ReadCloser, *PrintJobResponse, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.NewDomainError("NOT_FOUND", "Job not found")
		}
		return nil, nil, fmt.Errorf("failed to get job: %w", err)
	}

	if !job.IsCompleted() || !job.HasPDF() {
		return nil, nil, shared.NewDomainError("INVALID_STATE", "Job has no generated PDF")
	}

	reader, err := s.pdfStorage.Get(ctx, job.PdfURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stored PDF: %w", err)
	}
	return reader, toJobResponse(job), nil
}

// GetDocumentTypes returns all available document types
func (s *PrintService) GetDocumentTypes() []DocumentTypeResponse {
	docTypes := printing.AllDocTypes()
	result := make([]DocumentTypeResponse, len(docTypes))
	for i, dt := range docTypes {
		result[i] = DocumentTypeResponse{
			Code:        string(dt),
			DisplayName: dt.DisplayName(),
			PaperSize:   string(printing.PaperSizeFor(dt)),
		}
	}
	return result
}

// CleanupExpired removes stored PDFs older than the retention period.
func (s *PrintService) CleanupExpired(ctx context.Context, retention time.Duration) (int, error) {
	removed, err := s.pdfStorage.CleanupOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up stored PDFs: %w", err)
	}
	if removed > 0 {
		s.logger.Info("expired PDFs removed", zap.Int("count", removed))
	}
	return removed, nil
}

func toJobResponse(j *printing.PrintJob) *PrintJobResponse {
	resp := &PrintJobResponse{
		ID:             j.ID.String(),
		DocumentType:   string(j.DocumentType),
		DocumentID:     j.DocumentID.String(),
		DocumentNumber: j.DocumentNumber,
		PaperSize:      string(j.PaperSize),
		Status:         string(j.Status),
		PdfURL:         j.PdfURL,
		ErrorMessage:   j.ErrorMessage,
		RenderedAt:     j.RenderedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.RequestedBy != nil {
		resp.RequestedBy = j.RequestedBy.String()
	}
	return resp
}
