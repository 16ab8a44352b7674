package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// UploadError describes a rejected upload, carrying the server message
// when one was returned.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upload rejected (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upload rejected (status %d)", e.StatusCode)
}

// UploadClient sends generated PDFs to POST {base}/pdf/upload as a
// multipart form with file, moduleName and entityId fields.
type UploadClient struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	logger  *zap.Logger
}

// NewUploadClient creates an UploadClient.
func NewUploadClient(baseURL string, timeout time.Duration, token TokenProvider, logger *zap.Logger) *UploadClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		logger:  logger,
	}
}

type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload sends the PDF and returns the URL the server stored it under.
func (c *UploadClient) Upload(ctx context.Context, filename string, data []byte, moduleName, entityID string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("upload data is empty")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("writing multipart body: %w", err)
	}
	if err := mw.WriteField("moduleName", moduleName); err != nil {
		return "", fmt.Errorf("writing multipart field: %w", err)
	}
	if err := mw.WriteField("entityId", entityID); err != nil {
		return "", fmt.Errorf("writing multipart field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pdf/upload", &body)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != nil {
		token, err := c.token()
		if err != nil {
			return "", fmt.Errorf("obtaining media token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed uploadResponse
		_ = json.Unmarshal(raw, &parsed)
		return "", &UploadError{StatusCode: resp.StatusCode, Message: parsed.Message}
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.logger.Warn("upload response is not JSON, returning empty URL",
			zap.Int("status", resp.StatusCode))
		return "", nil
	}
	return parsed.URL, nil
}
