package types

import (
	"net/http"
	"time"
)

// ErrorResponse is the structured error body returned by the HTTP boundary
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// NewErrorResponse builds an error body for the given status code
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	}
}
