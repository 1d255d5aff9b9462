package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewDependencyError wraps a failure from an external collaborator
// (identity provider, data store, object store). The dependency message is
// passed through so the caller sees what the backing service reported.
func NewDependencyError(prefix string, err error) *DomainError {
	return NewDomainError(CodeDependency, prefix+": "+err.Error())
}

// Error codes used across the domain
const (
	CodeValidation      = "ERR_VALIDATION"
	CodeUnauthenticated = "ERR_UNAUTHENTICATED"
	CodeForbidden       = "ERR_FORBIDDEN"
	CodeNotFound        = "ERR_NOT_FOUND"
	CodeDependency      = "ERR_DEPENDENCY"
	CodeInternal        = "ERR_INTERNAL"
)

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrUnauthenticated = NewDomainError(CodeUnauthenticated, "Invalid or expired token")
	ErrForbidden       = NewDomainError(CodeForbidden, "Forbidden: insufficient role")
	ErrInternal        = NewDomainError(CodeInternal, "Internal server error")
)
