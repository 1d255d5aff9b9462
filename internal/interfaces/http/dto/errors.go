package dto

import "net/http"

// Error code constants
// Format: ERR_<DESCRIPTION>
const (
	// ErrCodeValidation is used when input fails a presence or type check
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeUnauthenticated is used when the bearer token is missing or invalid
	ErrCodeUnauthenticated = "ERR_UNAUTHENTICATED"
	// ErrCodeForbidden is used when the caller lacks the required role
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeDependency is used when a backing service (identity provider,
	// data store, object store, mail relay) reports a failure
	ErrCodeDependency = "ERR_DEPENDENCY"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeUnauthenticated: http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeDependency:      http.StatusInternalServerError,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
