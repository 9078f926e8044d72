package dto

import "net/http"

// Stable error codes used in error responses
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadGateway   = "BAD_GATEWAY"
)

// domainCodeStatus maps domain error codes to HTTP status codes. Codes
// missing from the map fall back to 400: domain validation failures are the
// common case.
var domainCodeStatus = map[string]int{
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadGateway:     http.StatusBadGateway,
	"ALREADY_EXISTS":      http.StatusConflict,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
}

// GetHTTPStatus resolves the HTTP status for an error code
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
