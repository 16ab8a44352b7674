package geo_test

import (
	"context"
	"testing"
	"time"

	appgeo "github.com/megui/backend/internal/application/geo"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/megui/backend/internal/infrastructure/geolocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedProvider struct {
	fix geolocation.Fix
	err error
}

func (p fixedProvider) CurrentPosition(ctx context.Context, opts geolocation.Options) (geolocation.Fix, error) {
	return p.fix, p.err
}

func TestService_ToDMS(t *testing.T) {
	svc := appgeo.NewService(nil, nil)

	t.Run("converts Lima coordinates", func(t *testing.T) {
		resp, err := svc.ToDMS(appgeo.ConvertToDMSRequest{Latitude: -12.0432, Longitude: -77.0282})
		require.NoError(t, err)

		assert.Equal(t, 12, resp.Latitude.Degrees)
		assert.Equal(t, 2, resp.Latitude.Minutes)
		assert.Equal(t, "S", resp.Latitude.Hemisphere)
		assert.Equal(t, "W", resp.Longitude.Hemisphere)
		assert.Contains(t, resp.Display, `"S`)
		assert.Contains(t, resp.Display, `"W`)
	})

	t.Run("rejects out-of-range latitude", func(t *testing.T) {
		_, err := svc.ToDMS(appgeo.ConvertToDMSRequest{Latitude: 91, Longitude: 0})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COORDINATE", domainErr.Code)
	})
}

func TestService_ToDecimal(t *testing.T) {
	svc := appgeo.NewService(nil, nil)

	t.Run("round-trips a DMS pair", func(t *testing.T) {
		resp, err := svc.ToDecimal(appgeo.ConvertToDecimalRequest{
			Latitude:  appgeo.DMSRequest{Degrees: 12, Minutes: 2, Seconds: 35.52, Hemisphere: "S"},
			Longitude: appgeo.DMSRequest{Degrees: 77, Minutes: 1, Seconds: 41.52, Hemisphere: "W"},
		})
		require.NoError(t, err)

		assert.InDelta(t, -12.0432, resp.Latitude, 0.0001)
		assert.InDelta(t, -77.0282, resp.Longitude, 0.0001)
	})

	t.Run("accepts lowercase hemisphere", func(t *testing.T) {
		resp, err := svc.ToDecimal(appgeo.ConvertToDecimalRequest{
			Latitude:  appgeo.DMSRequest{Degrees: 10, Hemisphere: "n"},
			Longitude: appgeo.DMSRequest{Degrees: 20, Hemisphere: "e"},
		})
		require.NoError(t, err)
		assert.InDelta(t, 10.0, resp.Latitude, 1e-9)
		assert.InDelta(t, 20.0, resp.Longitude, 1e-9)
	})

	t.Run("rejects O as a longitude hemisphere", func(t *testing.T) {
		_, err := svc.ToDecimal(appgeo.ConvertToDecimalRequest{
			Latitude:  appgeo.DMSRequest{Degrees: 12, Hemisphere: "S"},
			Longitude: appgeo.DMSRequest{Degrees: 77, Hemisphere: "O"},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COORDINATE", domainErr.Code)
	})

	t.Run("rejects sixty seconds", func(t *testing.T) {
		_, err := svc.ToDecimal(appgeo.ConvertToDecimalRequest{
			Latitude:  appgeo.DMSRequest{Degrees: 12, Minutes: 2, Seconds: 60, Hemisphere: "S"},
			Longitude: appgeo.DMSRequest{Degrees: 77, Hemisphere: "W"},
		})
		assert.Error(t, err)
	})
}

func TestService_Validate(t *testing.T) {
	svc := appgeo.NewService(nil, nil)

	resp := svc.Validate(appgeo.ConvertToDMSRequest{Latitude: -12.0432, Longitude: -77.0282})
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)

	resp = svc.Validate(appgeo.ConvertToDMSRequest{Latitude: 95, Longitude: -200})
	assert.False(t, resp.Valid)
	assert.Len(t, resp.Errors, 2)
}

func TestService_CapturePosition(t *testing.T) {
	t.Run("returns the provider fix with DMS display", func(t *testing.T) {
		capture := geolocation.NewService(fixedProvider{
			fix: geolocation.Fix{Latitude: -12.0432, Longitude: -77.0282, Accuracy: 8, Timestamp: time.Now()},
		}, geolocation.DefaultOptions(), nil)
		svc := appgeo.NewService(capture, nil)

		resp, err := svc.CapturePosition(context.Background())
		require.NoError(t, err)

		assert.InDelta(t, -12.0432, resp.Latitude, 1e-9)
		assert.Contains(t, resp.Display, `"S`)
	})

	t.Run("maps permission denied", func(t *testing.T) {
		capture := geolocation.NewService(fixedProvider{err: geolocation.ErrPermissionDenied}, geolocation.DefaultOptions(), nil)
		svc := appgeo.NewService(capture, nil)

		_, err := svc.CapturePosition(context.Background())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PERMISSION_DENIED", domainErr.Code)
	})

	t.Run("fails when no provider is configured", func(t *testing.T) {
		svc := appgeo.NewService(nil, nil)

		_, err := svc.CapturePosition(context.Background())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_CONFIGURED", domainErr.Code)
	})
}
