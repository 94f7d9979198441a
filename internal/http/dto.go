package http

// ErrorResponse is the wire shape of every failure outcome.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo carries the stable error category and a human-readable message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}
