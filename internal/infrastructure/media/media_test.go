package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLogoClient_FetchesAndDecodes(t *testing.T) {
	companyID := uuid.New()
	data := pngBytes(t, 300, 100)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/empresas-logo/"+companyID.String()+"/logo", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write(data)
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, 5*time.Second, func() (string, error) { return "tok-123", nil }, nil)
	img, err := c.Logo(context.Background(), companyID, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 300, img.Width)
	assert.Equal(t, 100, img.Height)
	assert.Equal(t, data, img.Data)
}

func TestLogoClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, 5*time.Second, nil, nil)
	_, err := c.Logo(context.Background(), uuid.New(), "logo.png")
	assert.Error(t, err)
}

func TestLogoClient_RejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, 5*time.Second, nil, nil)
	_, err := c.Logo(context.Background(), uuid.New(), "logo.png")
	assert.Error(t, err)
}

func TestLogoClient_TokenProviderFailure(t *testing.T) {
	c := NewLogoClient("http://localhost:0", time.Second, func() (string, error) {
		return "", assert.AnError
	}, nil)
	_, err := c.Logo(context.Background(), uuid.New(), "logo.png")
	assert.Error(t, err)
}

func TestUploadClient_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pdf/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tickets", r.FormValue("moduleName"))
		assert.Equal(t, "142", r.FormValue("entityId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ticket-00000142.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://files.example.com/tickets/142.pdf"}`))
	}))
	defer srv.Close()

	c := NewUploadClient(srv.URL, 5*time.Second, nil, nil)
	url, err := c.Upload(context.Background(), "ticket-00000142.pdf", []byte("%PDF-1.4"), "tickets", "142")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/tickets/142.pdf", url)
}

func TestUploadClient_ServerMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"message":"El archivo excede el tamano permitido"}`))
	}))
	defer srv.Close()

	c := NewUploadClient(srv.URL, 5*time.Second, nil, nil)
	_, err := c.Upload(context.Background(), "big.pdf", []byte("%PDF-1.4"), "tickets", "1")

	var ue *UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusRequestEntityTooLarge, ue.StatusCode)
	assert.Contains(t, ue.Message, "excede")
}

func TestUploadClient_EmptyData(t *testing.T) {
	c := NewUploadClient("http://localhost:0", time.Second, nil, nil)
	_, err := c.Upload(context.Background(), "x.pdf", nil, "tickets", "1")
	assert.Error(t, err)
}
