// Package media talks to the upstream media API: it fetches company
// logos and uploads generated PDFs.
package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/megui/backend/internal/infrastructure/pdf"
	"go.uber.org/zap"
)

// TokenProvider supplies the bearer token for media API requests. It is
// injected so the client stays decoupled from session handling.
type TokenProvider func() (string, error)

// maxLogoBytes caps the logo download size.
const maxLogoBytes = 5 << 20

// LogoClient fetches company logos from GET {base}/empresas-logo/{id}/logo.
type LogoClient struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	logger  *zap.Logger
}

// NewLogoClient creates a LogoClient. token may be nil for anonymous
// endpoints.
func NewLogoClient(baseURL string, timeout time.Duration, token TokenProvider, logger *zap.Logger) *LogoClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		logger:  logger,
	}
}

// Logo downloads and decodes the company logo. The filename hint
// selects the expected format; the actual bytes decide the decoded one.
func (c *LogoClient) Logo(ctx context.Context, companyID uuid.UUID, filenameHint string) (pdf.Image, error) {
	url := fmt.Sprintf("%s/empresas-logo/%s/logo", c.baseURL, companyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeLogoFetch, "building logo request failed", err)
	}
	if err := c.authorize(req); err != nil {
		return pdf.Image{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeLogoFetch, "logo request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeLogoFetch,
			fmt.Sprintf("logo endpoint returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeLogoFetch, "reading logo body failed", err)
	}
	if len(data) > maxLogoBytes {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeLogoFetch, "logo exceeds size limit", nil)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeInvalidImage, "logo is not a decodable image", err)
	}
	if format != "png" && format != "jpeg" {
		return pdf.Image{}, pdf.NewRenderError(pdf.ErrCodeInvalidImage, "logo format must be PNG or JPEG, got "+format, nil)
	}
	if hinted := formatFromFilename(filenameHint); hinted != "" && hinted != format {
		c.logger.Debug("logo format differs from filename hint",
			zap.String("hint", hinted),
			zap.String("actual", format))
	}

	return pdf.Image{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func (c *LogoClient) authorize(req *http.Request) error {
	if c.token == nil {
		return nil
	}
	token, err := c.token()
	if err != nil {
		return pdf.NewRenderError(pdf.ErrCodeLogoFetch, "obtaining media token failed", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func formatFromFilename(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".png"):
		return "png"
	case strings.HasSuffix(strings.ToLower(name), ".jpg"),
		strings.HasSuffix(strings.ToLower(name), ".jpeg"):
		return "jpeg"
	}
	return ""
}
