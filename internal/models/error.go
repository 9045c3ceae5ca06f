package models

// Error messages returned in API error bodies
const (
	MsgRestaurantNotFound  = "Restaurant not found"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServer      = "Internal server error"
	MsgInvalidRequestBody  = "invalid request body"
	MsgDatabaseUnreachable = "database unreachable"
)

// ErrorResponse is the body of 404, 405 and 500 responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of 400 responses
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation error body, never with a null list
func NewValidationErrorResponse(messages []string) ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return ValidationErrorResponse{Errors: messages}
}
