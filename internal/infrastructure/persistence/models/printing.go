package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/domain/printing"
)

// PrintJobModel maps the generation job aggregate to the print_jobs table.
type PrintJobModel struct {
	AggregateModel
	DocumentType   string    `gorm:"not null;index"`
	DocumentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentNumber string    `gorm:"not null"`
	PaperSize      string    `gorm:"not null"`
	Status         string    `gorm:"not null;index"`
	PdfURL         string
	ErrorMessage   string
	RenderedAt     *time.Time
	RequestedBy    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for PrintJobModel
func (PrintJobModel) TableName() string {
	return "print_jobs"
}

// ToDomain converts the model to a domain PrintJob
func (m *PrintJobModel) ToDomain() *printing.PrintJob {
	j := &printing.PrintJob{
		DocumentType:   printing.DocType(m.DocumentType),
		DocumentID:     m.DocumentID,
		DocumentNumber: m.DocumentNumber,
		PaperSize:      printing.PaperSize(m.PaperSize),
		Status:         printing.JobStatus(m.Status),
		PdfURL:         m.PdfURL,
		ErrorMessage:   m.ErrorMessage,
		RenderedAt:     m.RenderedAt,
		RequestedBy:    m.RequestedBy,
	}
	m.PopulateAggregateRoot(&j.BaseAggregateRoot)
	return j
}

// PrintJobModelFromDomain builds the model from a domain PrintJob
func PrintJobModelFromDomain(j *printing.PrintJob) *PrintJobModel {
	m := &PrintJobModel{
		DocumentType:   string(j.DocumentType),
		DocumentID:     j.DocumentID,
		DocumentNumber: j.DocumentNumber,
		PaperSize:      string(j.PaperSize),
		Status:         string(j.Status),
		PdfURL:         j.PdfURL,
		ErrorMessage:   j.ErrorMessage,
		RenderedAt:     j.RenderedAt,
		RequestedBy:    j.RequestedBy,
	}
	m.FromDomainAggregateRoot(j.BaseAggregateRoot)
	return m
}
