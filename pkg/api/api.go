// Package api writes the JSON envelope every endpoint responds with.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"callcenter-service/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format
type Response struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	Created(ctx context.Context, w http.ResponseWriter, data any)
	NoContent(ctx context.Context, w http.ResponseWriter)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	Conflict(ctx context.Context, w http.ResponseWriter, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
	logger logger.LoggerInterface
}

// New creates a response writer that discards encoding failures.
func New() Api {
	return &api{logger: logger.NoOpLogger()}
}

// NewWithLogger creates a response writer that logs encoding failures.
func NewWithLogger(appLogger logger.LoggerInterface) Api {
	return &api{logger: appLogger}
}

func (a *api) write(ctx context.Context, w http.ResponseWriter, statusCode int, response Response) {
	response.RequestID = middleware.GetReqID(ctx)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.ErrorContext(ctx, "Failed to encode response", "status", statusCode, "error", err)
	}
}

// Success sends a 200 OK response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(ctx, w, http.StatusOK, Response{Status: StatusSuccess, Data: data})
}

// Created sends a 201 Created response with data
func (a *api) Created(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(ctx, w, http.StatusCreated, Response{Status: StatusSuccess, Data: data})
}

// NoContent sends a bodyless 204 No Content response
func (a *api) NoContent(ctx context.Context, w http.ResponseWriter) {
	if id := middleware.GetReqID(ctx); id != "" {
		w.Header().Set(middleware.RequestIDHeader, id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Error sends an error response with specific HTTP status code and error details
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.write(ctx, w, statusCode, Response{Status: StatusError, Error: apiErr})
}

// BadRequest sends a 400 Bad Request response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{Code: "BAD_REQUEST", Message: message})
}

// NotFound sends a 404 Not Found response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{Code: "NOT_FOUND", Message: message})
}

// Conflict sends a 409 Conflict response
func (a *api) Conflict(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusConflict, &Error{Code: "CONFLICT", Message: message})
}

// InternalServerError sends a 500 Internal Server Error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{Code: "INTERNAL_SERVER_ERROR", Message: message})
}

// ValidationError sends a 422 Unprocessable Entity response with validation details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusUnprocessableEntity, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}
