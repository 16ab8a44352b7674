// Package geo exposes coordinate conversion and geolocation capture as
// application operations.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/megui/backend/internal/domain/geo"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/infrastructure/geolocation"
	"go.uber.org/zap"
)

// Service handles coordinate conversion and position capture
type Service struct {
	capture *geolocation.Service
	logger  *zap.Logger
}

// NewService creates a new geo Service. The capture service may be nil
// when no geolocation provider is configured.
func NewService(capture *geolocation.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		capture: capture,
		logger:  logger,
	}
}

// ToDMS converts a decimal-degree coordinate pair to DMS notation
func (s *Service) ToDMS(req ConvertToDMSRequest) (*DMSPairResponse, error) {
	result := geo.ValidateCoordinate(req.Latitude, req.Longitude)
	if !result.Valid {
		return nil, shared.NewDomainError("INVALID_COORDINATE", strings.Join(result.Errors, "; "))
	}

	lat := geo.DecimalToDMS(req.Latitude, true).Rounded()
	lon := geo.DecimalToDMS(req.Longitude, false).Rounded()

	return &DMSPairResponse{
		Latitude:  toDMSResponse(lat),
		Longitude: toDMSResponse(lon),
		Display:   lat.String() + " " + lon.String(),
	}, nil
}

// ToDecimal converts a DMS coordinate pair back to decimal degrees
func (s *Service) ToDecimal(req ConvertToDecimalRequest) (*DecimalPairResponse, error) {
	lat, err := fromDMSRequest(req.Latitude, geo.HemisphereNorth, geo.HemisphereSouth)
	if err != nil {
		return nil, err
	}
	lon, err := fromDMSRequest(req.Longitude, geo.HemisphereEast, geo.HemisphereWest)
	if err != nil {
		return nil, err
	}

	latDec := lat.Decimal()
	lonDec := lon.Decimal()
	result := geo.ValidateCoordinate(latDec, lonDec)
	if !result.Valid {
		return nil, shared.NewDomainError("INVALID_COORDINATE", strings.Join(result.Errors, "; "))
	}

	return &DecimalPairResponse{
		Latitude:  latDec,
		Longitude: lonDec,
	}, nil
}

// Validate checks a decimal coordinate pair
func (s *Service) Validate(req ConvertToDMSRequest) *ValidationResponse {
	result := geo.ValidateCoordinate(req.Latitude, req.Longitude)
	return &ValidationResponse{
		Valid:  result.Valid,
		Errors: result.Errors,
	}
}

// CapturePosition obtains the current position from the configured
// geolocation provider.
func (s *Service) CapturePosition(ctx context.Context) (*PositionResponse, error) {
	if s.capture == nil {
		return nil, shared.NewDomainError("NOT_CONFIGURED", "No geolocation provider is configured")
	}

	fix, err := s.capture.Capture(ctx)
	if err != nil {
		switch {
		case errors.Is(err, geolocation.ErrPermissionDenied):
			return nil, shared.NewDomainError("PERMISSION_DENIED", "Location permission was denied")
		case errors.Is(err, geolocation.ErrTimeout):
			return nil, shared.NewDomainError("TIMEOUT", "Timed out waiting for a position fix")
		case errors.Is(err, geolocation.ErrPositionUnavailable):
			return nil, shared.NewDomainError("POSITION_UNAVAILABLE", "Current position is unavailable")
		default:
			return nil, fmt.Errorf("failed to capture position: %w", err)
		}
	}

	s.logger.Debug("position captured",
		zap.Float64("latitude", fix.Latitude),
		zap.Float64("longitude", fix.Longitude),
		zap.Float64("accuracy", fix.Accuracy))

	return &PositionResponse{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Accuracy:  fix.Accuracy,
		Timestamp: fix.Timestamp,
		Display:   geolocation.Display(fix),
	}, nil
}

func toDMSResponse(d geo.DMS) DMSResponse {
	return DMSResponse{
		Degrees:    d.Degrees,
		Minutes:    d.Minutes,
		Seconds:    d.Seconds,
		Hemisphere: d.Hemisphere,
		Display:    d.String(),
	}
}

func fromDMSRequest(req DMSRequest, positive, negative string) (geo.DMS, error) {
	hemisphere := strings.ToUpper(strings.TrimSpace(req.Hemisphere))
	if hemisphere != positive && hemisphere != negative {
		return geo.DMS{}, shared.NewDomainError("INVALID_COORDINATE",
			fmt.Sprintf("hemisphere must be %s or %s, got %q", positive, negative, req.Hemisphere))
	}
	if req.Degrees < 0 || req.Minutes < 0 || req.Minutes > 59 || req.Seconds < 0 || req.Seconds >= 60 {
		return geo.DMS{}, shared.NewDomainError("INVALID_COORDINATE", "degrees, minutes and seconds are out of range")
	}
	return geo.DMS{
		Degrees:    req.Degrees,
		Minutes:    req.Minutes,
		Seconds:    req.Seconds,
		Hemisphere: hemisphere,
	}, nil
}
