package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/infrastructure/media"
	"github.com/megui/backend/internal/infrastructure/pdf"
	"go.uber.org/zap"
)

var _ PDFStorage = (*RemoteStorage)(nil)

// RemoteStorage delegates PDF persistence to the upstream media API via
// its multipart upload endpoint. The remote side owns retrieval,
// deletion and retention, so those operations are not supported here.
type RemoteStorage struct {
	client *media.UploadClient
	logger *zap.Logger
}

// NewRemoteStorage creates a RemoteStorage.
func NewRemoteStorage(client *media.UploadClient, logger *zap.Logger) *RemoteStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteStorage{client: client, logger: logger}
}

// Store uploads the PDF to the media API and returns the URL it reports.
func (s *RemoteStorage) Store(ctx context.Context, req *StoreRequest) (*StoreResult, error) {
	if req == nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "store request is nil", nil)
	}
	if req.JobID == uuid.Nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "job ID is required", nil)
	}
	if len(req.PDFData) == 0 {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "PDF data is empty", nil)
	}

	module := req.ModuleName
	if module == "" {
		module = "documents"
	}
	filename := fmt.Sprintf("%s-%s.pdf", module, req.DocumentNumber)

	url, err := s.client.Upload(ctx, filename, req.PDFData, module, req.DocumentNumber)
	if err != nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "remote upload failed", err)
	}

	s.logger.Info("PDF uploaded to media API",
		zap.String("filename", filename),
		zap.String("url", url))

	return &StoreResult{Path: url, URL: url, Size: int64(len(req.PDFData))}, nil
}

// Get is not supported; documents are served by the media API.
func (s *RemoteStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "remote storage does not serve documents", nil)
}

// Delete is not supported; the media API owns document lifecycle.
func (s *RemoteStorage) Delete(ctx context.Context, path string) error {
	return pdf.NewRenderError(pdf.ErrCodeStorageFailed, "remote storage does not delete documents", nil)
}

// CleanupOlderThan is a no-op; retention is enforced remotely.
func (s *RemoteStorage) CleanupOlderThan(ctx context.Context, age time.Duration) (int, error) {
	return 0, nil
}

// GetURL returns the path unchanged; remote paths are already URLs.
func (s *RemoteStorage) GetURL(path string) string {
	return path
}
