package geo

import (
	"time"
)

// ConvertToDMSRequest carries a decimal-degree coordinate pair. Zero is
// a valid value on both axes, so no presence check is applied.
type ConvertToDMSRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DMSRequest carries one axis of a DMS coordinate
type DMSRequest struct {
	Degrees    int     `json:"degrees" binding:"min=0,max=180"`
	Minutes    int     `json:"minutes" binding:"min=0,max=59"`
	Seconds    float64 `json:"seconds" binding:"min=0"`
	Hemisphere string  `json:"hemisphere" binding:"required,len=1"`
}

// ConvertToDecimalRequest carries a DMS coordinate pair
type ConvertToDecimalRequest struct {
	Latitude  DMSRequest `json:"latitude" binding:"required"`
	Longitude DMSRequest `json:"longitude" binding:"required"`
}

// DMSResponse represents one axis in DMS notation
type DMSResponse struct {
	Degrees    int     `json:"degrees"`
	Minutes    int     `json:"minutes"`
	Seconds    float64 `json:"seconds"`
	Hemisphere string  `json:"hemisphere"`
	Display    string  `json:"display"`
}

// DMSPairResponse represents a converted coordinate pair
type DMSPairResponse struct {
	Latitude  DMSResponse `json:"latitude"`
	Longitude DMSResponse `json:"longitude"`
	Display   string      `json:"display"`
}

// DecimalPairResponse represents a coordinate pair in decimal degrees
type DecimalPairResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ValidationResponse reports coordinate validation results
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// PositionResponse represents a captured position fix
type PositionResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
	Display   string    `json:"display"`
}
