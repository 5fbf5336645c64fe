package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgNoActiveSessionError    = "No dig in progress. Start one first."
	ErrMsgAllowanceExhaustedError = "No digs left today. Come back tomorrow!"
	ErrMsgInvalidCellError        = "That spot is outside the dig site"

	ErrMsgMemoryNotFoundError      = "Memory not found"
	ErrMsgMemoryNotDiscoveredError = "That memory is still buried"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusBadRequest, ErrMsgNoActiveSessionError
	case errors.Is(err, domain.ErrAllowanceExhausted):
		return http.StatusTooManyRequests, ErrMsgAllowanceExhaustedError
	case errors.Is(err, domain.ErrInvalidCell):
		return http.StatusBadRequest, ErrMsgInvalidCellError
	case errors.Is(err, domain.ErrMemoryNotFound):
		return http.StatusNotFound, ErrMsgMemoryNotFoundError
	case errors.Is(err, domain.ErrMemoryNotDiscovered):
		return http.StatusConflict, ErrMsgMemoryNotDiscoveredError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrStorageError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short custom messages (tests, mocks); hide anything else
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
