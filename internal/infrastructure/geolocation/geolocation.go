// Package geolocation captures the device position used to stamp
// tickets with the coordinates of the gate where they were issued.
package geolocation

import (
	"context"
	"errors"
	"time"

	"github.com/megui/backend/internal/domain/geo"
	"go.uber.org/zap"
)

// Capture failure sentinels, mirroring the W3C geolocation error codes.
var (
	ErrPermissionDenied    = errors.New("geolocation: permission denied")
	ErrPositionUnavailable = errors.New("geolocation: position unavailable")
	ErrTimeout             = errors.New("geolocation: timeout")
)

// Fix is one captured position.
type Fix struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters, 0 if unknown
	Timestamp time.Time
}

// Options tunes a capture request.
type Options struct {
	// HighAccuracy requests the best available fix at the cost of time
	// and power.
	HighAccuracy bool
	// Timeout bounds how long a single capture may take.
	Timeout time.Duration
	// MaximumAge is the oldest acceptable cached fix. Zero forces a
	// fresh reading.
	MaximumAge time.Duration
}

// DefaultOptions returns the capture options used for ticket issuing: a
// fresh reading with a 15 second budget.
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      15 * time.Second,
		MaximumAge:   0,
	}
}

// Provider obtains a position fix from some positioning source.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (Fix, error)
}

// Service captures positions, validates them and converts them to the
// display form.
type Service struct {
	provider Provider
	opts     Options
	logger   *zap.Logger
}

// NewService creates a Service. Zero fields in opts fall back to
// DefaultOptions.
func NewService(provider Provider, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := DefaultOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	return &Service{provider: provider, opts: opts, logger: logger}
}

// Capture obtains a validated position fix. The capture is bounded by
// the configured timeout on top of the caller's context.
func (s *Service) Capture(ctx context.Context) (Fix, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	fix, err := s.provider.CurrentPosition(ctx, s.opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}
		s.logger.Warn("position capture failed", zap.Error(err))
		return Fix{}, err
	}

	if result := geo.ValidateCoordinate(fix.Latitude, fix.Longitude); !result.Valid {
		s.logger.Warn("provider returned out-of-range coordinates",
			zap.Float64("latitude", fix.Latitude),
			zap.Float64("longitude", fix.Longitude),
			zap.Strings("errors", result.Errors))
		return Fix{}, ErrPositionUnavailable
	}

	if fix.Timestamp.IsZero() {
		fix.Timestamp = time.Now()
	}
	return fix, nil
}

// Display renders a fix in DMS form, latitude then longitude.
func Display(f Fix) string {
	lat := geo.DecimalToDMS(f.Latitude, true).Rounded()
	lon := geo.DecimalToDMS(f.Longitude, false).Rounded()
	return lat.String() + " " + lon.String()
}
