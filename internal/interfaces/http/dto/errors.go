package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeGenerationInFlight is used when a PDF is already being generated
	// for the same document
	ErrCodeGenerationInFlight = "ERR_GENERATION_IN_FLIGHT"
)

// Geolocation error codes
const (
	// ErrCodeInvalidCoordinate is used for coordinates outside valid ranges
	ErrCodeInvalidCoordinate = "ERR_INVALID_COORDINATE"
	// ErrCodeLocationDenied is used when the position provider refuses access
	ErrCodeLocationDenied = "ERR_LOCATION_DENIED"
	// ErrCodeLocationTimeout is used when no position fix arrives in time
	ErrCodeLocationTimeout = "ERR_LOCATION_TIMEOUT"
	// ErrCodeLocationUnavailable is used when the provider has no position
	ErrCodeLocationUnavailable = "ERR_LOCATION_UNAVAILABLE"
	// ErrCodeNotConfigured is used when a required backend is not configured
	ErrCodeNotConfigured = "ERR_NOT_CONFIGURED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors
	ErrCodeInvalidState:       http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:       http.StatusUnprocessableEntity,
	ErrCodeGenerationInFlight: http.StatusConflict,

	// Geolocation errors
	ErrCodeInvalidCoordinate:   http.StatusBadRequest,
	ErrCodeLocationDenied:      http.StatusForbidden,
	ErrCodeLocationTimeout:     http.StatusGatewayTimeout,
	ErrCodeLocationUnavailable: http.StatusServiceUnavailable,
	ErrCodeNotConfigured:       http.StatusServiceUnavailable,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to the standardized
// ERR_* codes used on the wire.
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":     ErrCodeValidation,
	"BAD_REQUEST":          ErrCodeBadRequest,
	"INTERNAL_ERROR":       ErrCodeInternal,

	// Document generation
	"GENERATION_IN_FLIGHT":    ErrCodeGenerationInFlight,
	"INVALID_DOC_TYPE":        ErrCodeInvalidInput,
	"INVALID_DOCUMENT":        ErrCodeInvalidInput,
	"INVALID_DOCUMENT_NUMBER": ErrCodeInvalidInput,
	"INVALID_PDF_URL":         ErrCodeInvalidInput,

	// Ticketing and companies
	"INVALID_VISITOR":      ErrCodeValidation,
	"INVALID_NUMERO":       ErrCodeValidation,
	"INVALID_RUC":          ErrCodeValidationFormat,
	"INVALID_RAZON_SOCIAL": ErrCodeValidation,
	"INVALID_LOGO":         ErrCodeValidation,

	// Maintenance
	"INVALID_WORK_ORDER": ErrCodeValidation,
	"INVALID_TASK":       ErrCodeValidation,

	// Geolocation
	"INVALID_COORDINATE":   ErrCodeInvalidCoordinate,
	"PERMISSION_DENIED":    ErrCodeLocationDenied,
	"TIMEOUT":              ErrCodeLocationTimeout,
	"POSITION_UNAVAILABLE": ErrCodeLocationUnavailable,
	"NOT_CONFIGURED":       ErrCodeNotConfigured,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
