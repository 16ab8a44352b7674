package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T) *FileSystemStorage {
	t.Helper()
	s, err := NewFileSystemStorage(&FileSystemStorageConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/api/v1/pdf",
	})
	require.NoError(t, err)
	return s
}

func TestFileSystemStorage_StoreAndGet(t *testing.T) {
	s := newFS(t)
	ctx := context.Background()

	res, err := s.Store(ctx, &StoreRequest{
		JobID:          uuid.New(),
		DocumentNumber: "00000142",
		ModuleName:     "tickets",
		PDFData:        []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), res.Size)
	assert.Contains(t, res.Path, "tickets")
	assert.Contains(t, res.URL, "http://localhost:8080/api/v1/pdf/")

	rc, err := s.Get(ctx, res.Path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestFileSystemStorage_StoreValidation(t *testing.T) {
	s := newFS(t)
	ctx := context.Background()

	_, err := s.Store(ctx, nil)
	assert.Error(t, err)

	_, err = s.Store(ctx, &StoreRequest{JobID: uuid.Nil, PDFData: []byte("x")})
	assert.Error(t, err)

	_, err = s.Store(ctx, &StoreRequest{JobID: uuid.New()})
	assert.Error(t, err, "empty data rejected")
}

func TestFileSystemStorage_TraversalBlocked(t *testing.T) {
	s := newFS(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "../etc/passwd")
	assert.Error(t, err)

	_, err = s.Get(ctx, "/etc/passwd")
	assert.Error(t, err)

	assert.Error(t, s.Delete(ctx, "../../x.pdf"))
}

func TestFileSystemStorage_Delete(t *testing.T) {
	s := newFS(t)
	ctx := context.Background()

	res, err := s.Store(ctx, &StoreRequest{JobID: uuid.New(), ModuleName: "tickets", PDFData: []byte("x")})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, res.Path))
	_, err = s.Get(ctx, res.Path)
	assert.Error(t, err)

	assert.NoError(t, s.Delete(ctx, res.Path), "deleting a missing file is not an error")
}

func TestFileSystemStorage_CleanupOlderThan(t *testing.T) {
	s := newFS(t)
	ctx := context.Background()

	res, err := s.Store(ctx, &StoreRequest{JobID: uuid.New(), ModuleName: "tickets", PDFData: []byte("x")})
	require.NoError(t, err)

	// age the file on disk
	old := time.Now().Add(-48 * time.Hour)
	full := filepath.Join(s.config.BasePath, res.Path)
	require.NoError(t, os.Chtimes(full, old, old))

	deleted, err := s.CleanupOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = s.CleanupOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestFileSystemStorage_GetURL(t *testing.T) {
	s := newFS(t)
	assert.Equal(t,
		"http://localhost:8080/api/v1/pdf/tickets/2026/08/x.pdf",
		s.GetURL("tickets/2026/08/x.pdf"))
}
