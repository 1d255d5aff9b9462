package dto

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error response. The message is duplicated at
// the top level so frontends can show it without digging into error.
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// LoginRequest is the password-grant login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ContactRequest is the contact-form relay payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AssignCategoriesRequest links a batch of directory entries to one
// category. The admin panel categorizes many members in a single call.
type AssignCategoriesRequest struct {
	MemberIDs  []int64 `json:"memberIds"`
	CategoryID int64   `json:"categoryId"`
}
