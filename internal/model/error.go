package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// MessageResponse is returned with status 200 when a lookup matches nothing.
// Callers branch on the presence of the message field.
type MessageResponse struct {
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeDistrictNotFound     = "DISTRICT_NOT_FOUND"
	ErrCodeRestaurantNotFound   = "RESTAURANT_NOT_FOUND"
	ErrCodeInvalidNumber        = "INVALID_NUMBER"
	ErrCodeInvalidSampleCount   = "INVALID_SAMPLE_COUNT"
	ErrCodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeDisallowedCORSOrigin = "DISALLOWED_CORS_ORIGIN"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrDistrictNotFound   = NewDomainError(ErrCodeDistrictNotFound, "台南不存在此行政區")
	ErrRestaurantNotFound = NewDomainError(ErrCodeRestaurantNotFound, "資料庫無此店家")
	ErrInvalidNumber      = NewDomainError(ErrCodeInvalidNumber, "number must be a positive integer")
	ErrInvalidSampleCount = NewDomainError(ErrCodeInvalidSampleCount, "number exceeds the restaurants available in this district")
)
