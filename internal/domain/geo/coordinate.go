// Package geo provides conversion between decimal-degree and
// degrees/minutes/seconds (DMS) geographic coordinate representations,
// together with range validation for latitude/longitude pairs.
//
// Negative longitudes use the "W" hemisphere symbol (ISO 6709 convention).
package geo

import (
	"fmt"
	"math"
)

// Hemisphere symbols. Longitude west is "W", not the Spanish "O".
const (
	HemisphereNorth = "N"
	HemisphereSouth = "S"
	HemisphereEast  = "E"
	HemisphereWest  = "W"
)

// Coordinate range limits in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// DMS is a degrees/minutes/seconds representation of one coordinate axis.
// Degrees and Minutes are non-negative; the sign is carried by Hemisphere.
type DMS struct {
	Degrees    int     `json:"degrees"`
	Minutes    int     `json:"minutes"`
	Seconds    float64 `json:"seconds"`
	Hemisphere string  `json:"hemisphere"`
}

// DecimalToDMS converts a decimal-degree value to its DMS representation.
// A value of exactly zero (including negative zero) maps to the positive
// hemisphere ("N" for latitude, "E" for longitude).
func DecimalToDMS(decimal float64, isLatitude bool) DMS {
	hemisphere := HemisphereEast
	if isLatitude {
		hemisphere = HemisphereNorth
	}
	// Negative zero compares equal to zero, so it lands in the
	// positive hemisphere here.
	if decimal < 0 {
		if isLatitude {
			hemisphere = HemisphereSouth
		} else {
			hemisphere = HemisphereWest
		}
	}

	totalSeconds := math.Abs(decimal) * 3600
	degrees := int(totalSeconds / 3600)
	remainder := totalSeconds - float64(degrees)*3600
	minutes := int(remainder / 60)
	seconds := remainder - float64(minutes)*60

	// Guard against float artifacts pushing seconds to exactly 60.
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		degrees++
	}

	return DMS{
		Degrees:    degrees,
		Minutes:    minutes,
		Seconds:    seconds,
		Hemisphere: hemisphere,
	}
}

// Decimal converts the DMS value back to decimal degrees. Southern and
// western hemispheres yield negative values.
func (d DMS) Decimal() float64 {
	decimal := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600
	if d.Hemisphere == HemisphereSouth || d.Hemisphere == HemisphereWest {
		return -decimal
	}
	return decimal
}

// Rounded returns a copy with seconds rounded to two decimal places for
// display. When rounding reaches 60.00 the overflow is carried into
// minutes (and minutes into degrees), so the result never shows 60.00".
func (d DMS) Rounded() DMS {
	out := d
	out.Seconds = math.Round(d.Seconds*100) / 100
	if out.Seconds >= 60 {
		out.Seconds = 0
		out.Minutes++
	}
	if out.Minutes >= 60 {
		out.Minutes = 0
		out.Degrees++
	}
	return out
}

// String renders the coordinate in conventional notation, e.g.
// 12°02'36.46"S. Seconds are rounded with carry before formatting.
func (d DMS) String() string {
	r := d.Rounded()
	return fmt.Sprintf("%d°%02d'%05.2f\"%s", r.Degrees, r.Minutes, r.Seconds, r.Hemisphere)
}

// ValidationResult reports the outcome of a coordinate pair validation.
// Both axes are checked independently, so Errors may contain two entries.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateCoordinate checks that latitude is within [-90, 90] and
// longitude within [-180, 180], reporting one descriptive error per
// failing axis.
func ValidateCoordinate(latitude, longitude float64) ValidationResult {
	var errs []string
	if latitude < MinLatitude || latitude > MaxLatitude || math.IsNaN(latitude) {
		errs = append(errs, fmt.Sprintf("latitude %.6f is outside the valid range [-90, 90]", latitude))
	}
	if longitude < MinLongitude || longitude > MaxLongitude || math.IsNaN(longitude) {
		errs = append(errs, fmt.Sprintf("longitude %.6f is outside the valid range [-180, 180]", longitude))
	}
	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
