// Package web provides the HTTP delivery layer for the trip planner.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is the standardized JSON error body for the HTTP surface.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new HTTP API error.
func NewError(code, message string, status int, details ...string) *Error {
	err := &Error{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput = NewError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrEmptyMessage = NewError("EMPTY_MESSAGE", "Message cannot be empty", http.StatusBadRequest)
	ErrInternal     = NewError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

// WriteError writes an Error as a JSON response.
func WriteError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*Error)
	if !ok {
		apiErr = NewError(ErrInternal.Code, ErrInternal.Message, ErrInternal.Status, err.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}
