package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/infrastructure/pdf"
	"go.uber.org/zap"
)

// FileSystemStorageConfig contains configuration for file system storage
type FileSystemStorageConfig struct {
	// BasePath is the root directory for PDF storage
	BasePath string
	// BaseURL is the URL prefix for accessing PDFs
	BaseURL string
	// Logger for operations
	Logger *zap.Logger
}

// FileSystemStorage stores PDFs on the local file system
type FileSystemStorage struct {
	config *FileSystemStorageConfig
	logger *zap.Logger
}

// NewFileSystemStorage creates a new file system based PDF storage
func NewFileSystemStorage(config *FileSystemStorageConfig) (*FileSystemStorage, error) {
	if config == nil {
		config = &FileSystemStorageConfig{}
	}
	if config.BasePath == "" {
		config.BasePath = "./data/pdfs"
	}
	if config.BaseURL == "" {
		config.BaseURL = "/api/v1/pdf"
	}

	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed,
			fmt.Sprintf("failed to create storage directory: %s", config.BasePath), err)
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSystemStorage{config: config, logger: logger}, nil
}

// Store saves a PDF file to the file system.
// Path structure: {base}/{module}/{year}/{month}/{job_id}.pdf
func (s *FileSystemStorage) Store(ctx context.Context, req *StoreRequest) (*StoreResult, error) {
	select {
	case <-ctx.Done():
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "operation cancelled", ctx.Err())
	default:
	}

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

	now := time.Now()
	relDir := filepath.Join(module, fmt.Sprintf("%d", now.Year()), fmt.Sprintf("%02d", now.Month()))
	dirPath := filepath.Join(s.config.BasePath, relDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to create directory", err)
	}

	fileName := req.JobID.String() + ".pdf"
	if err := os.WriteFile(filepath.Join(dirPath, fileName), req.PDFData, 0644); err != nil {
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to write PDF file", err)
	}

	relativePath := filepath.Join(relDir, fileName)
	url := s.GetURL(relativePath)

	s.logger.Info("PDF stored",
		zap.String("path", relativePath),
		zap.String("document", req.DocumentNumber),
		zap.Int("size", len(req.PDFData)))

	return &StoreResult{Path: relativePath, URL: url, Size: int64(len(req.PDFData))}, nil
}

// Get retrieves a PDF file by its relative path
func (s *FileSystemStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "operation cancelled", ctx.Err())
	default:
	}

	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "PDF not found", err)
		}
		return nil, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to open PDF file", err)
	}
	return file, nil
}

// Delete removes a PDF file
func (s *FileSystemStorage) Delete(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return pdf.NewRenderError(pdf.ErrCodeStorageFailed, "operation cancelled", ctx.Err())
	default:
	}

	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to delete PDF file", err)
	}

	s.logger.Info("PDF deleted", zap.String("path", path))
	return nil
}

// CleanupOlderThan removes files older than the specified duration
func (s *FileSystemStorage) CleanupOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	deleted := 0

	err := filepath.Walk(s.config.BasePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if info.IsDir() || filepath.Ext(path) != ".pdf" {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				deleted++
				s.logger.Debug("deleted old PDF", zap.String("path", path))
			}
		}
		return nil
	})

	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return deleted, pdf.NewRenderError(pdf.ErrCodeStorageFailed, "cleanup walk failed", err)
	}

	s.logger.Info("cleanup completed", zap.Int("deleted", deleted), zap.Duration("age", age))
	return deleted, nil
}

// GetURL returns the accessible URL for a stored PDF
func (s *FileSystemStorage) GetURL(path string) string {
	cleanPath := filepath.ToSlash(filepath.Clean(path))
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.BaseURL, "/"), cleanPath)
}

// resolve sanitizes a relative path and verifies it stays under BasePath.
func (s *FileSystemStorage) resolve(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) || containsDotDot(path) {
		s.logger.Warn("blocked potentially malicious path", zap.String("path", path))
		return "", pdf.NewRenderError(pdf.ErrCodeStorageFailed, "invalid path", nil)
	}

	fullPath := filepath.Join(s.config.BasePath, cleanPath)

	absBase, err := filepath.Abs(s.config.BasePath)
	if err != nil {
		return "", pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to resolve base path", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", pdf.NewRenderError(pdf.ErrCodeStorageFailed, "failed to resolve file path", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) && absPath != absBase {
		s.logger.Warn("path escape attempt blocked", zap.String("path", path))
		return "", pdf.NewRenderError(pdf.ErrCodeStorageFailed, "invalid path", nil)
	}
	return fullPath, nil
}

func containsDotDot(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return slices.Contains(parts, "..")
}

var _ PDFStorage = (*FileSystemStorage)(nil)
