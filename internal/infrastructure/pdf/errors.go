package pdf

// RenderError represents an error during document layout or rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for generation failures
const (
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeEmptyDocument = "EMPTY_DOCUMENT"
	ErrCodeInvalidImage  = "INVALID_IMAGE"
	ErrCodeQREncoding    = "QR_ENCODING_FAILED"
	ErrCodeLogoFetch     = "LOGO_FETCH_FAILED"
	ErrCodeStorageFailed = "STORAGE_FAILED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
