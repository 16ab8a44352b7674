package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPProvider obtains fixes from a positioning gateway, such as a GPS
// bridge on the gate terminal. The gateway answers GET {url}?highAccuracy=
// with {"latitude":..,"longitude":..,"accuracy":..} and maps failures to
// the W3C error codes: 1 permission denied, 2 unavailable, 3 timeout.
type HTTPProvider struct {
	url  string
	http *http.Client
}

// NewHTTPProvider creates an HTTPProvider. The HTTP client timeout is
// left open; captures are bounded by the request context.
func NewHTTPProvider(gatewayURL string) *HTTPProvider {
	return &HTTPProvider{url: gatewayURL, http: &http.Client{}}
}

type gatewayResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"` // unix milliseconds, optional
	Code      int     `json:"code"`      // W3C error code on failure
	Message   string  `json:"message"`
}

// CurrentPosition requests a fix from the gateway.
func (p *HTTPProvider) CurrentPosition(ctx context.Context, opts Options) (Fix, error) {
	q := url.Values{}
	q.Set("highAccuracy", strconv.FormatBool(opts.HighAccuracy))
	q.Set("maximumAge", strconv.FormatInt(opts.MaximumAge.Milliseconds(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"?"+q.Encode(), nil)
	if err != nil {
		return Fix{}, fmt.Errorf("building position request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return Fix{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Fix{}, fmt.Errorf("reading position response: %w", err)
	}

	var gr gatewayResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return Fix{}, fmt.Errorf("decoding position response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || gr.Code != 0 {
		return Fix{}, mapGatewayError(gr.Code)
	}

	fix := Fix{
		Latitude:  gr.Latitude,
		Longitude: gr.Longitude,
		Accuracy:  gr.Accuracy,
	}
	if gr.Timestamp > 0 {
		fix.Timestamp = time.UnixMilli(gr.Timestamp)
	}
	return fix, nil
}

func mapGatewayError(code int) error {
	switch code {
	case 1:
		return ErrPermissionDenied
	case 3:
		return ErrTimeout
	default:
		return ErrPositionUnavailable
	}
}
