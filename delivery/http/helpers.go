// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"callcenter-service/domain"
	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/validator"

	"github.com/go-chi/chi/v5"
)

// handleError maps a categorised error to its response. Caller errors carry
// their message to the client; anything else is logged and hidden.
func handleError(ctx context.Context, w http.ResponseWriter, apiClient api.Api, appLogger logger.LoggerInterface, err error, fallback string) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		appLogger.ErrorContext(ctx, "Unexpected error", "error", err)
		apiClient.InternalServerError(ctx, w, fallback)
		return
	}

	switch appErr.Code {
	case http.StatusBadRequest:
		apiClient.BadRequest(ctx, w, err.Error())
	case http.StatusNotFound:
		apiClient.NotFound(ctx, w, err.Error())
	case http.StatusConflict:
		apiClient.Conflict(ctx, w, err.Error())
	default:
		appLogger.ErrorContext(ctx, "Unexpected error", "error", err)
		apiClient.InternalServerError(ctx, w, fallback)
	}
}

// decodeAndValidate reads a JSON body into req and checks its validate tags.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, apiClient api.Api, appLogger logger.LoggerInterface, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		appLogger.WarnContext(ctx, "Invalid request body", "error", err)
		apiClient.BadRequest(ctx, w, "Invalid request body")
		return false
	}
	if validationErrors := validator.ValidateStruct(req); validationErrors != nil {
		appLogger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		apiClient.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return false
	}
	return true
}

// convertValidationErrors converts a validation map to ErrorDetail entries
// ordered by field.
func convertValidationErrors(validationErrors map[string]string) []api.ErrorDetail {
	details := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		details = append(details, api.ErrorDetail{Field: field, Message: message})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })
	return details
}

// int64Param parses a positive integer URL parameter.
func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// pageParams reads pageNumber and pageSize. Absent values are passed on as
// zero and defaulted by the store.
func pageParams(r *http.Request) (int, int, error) {
	query := r.URL.Query()
	var pageNumber, pageSize int
	var err error
	if v := query.Get("pageNumber"); v != "" {
		if pageNumber, err = strconv.Atoi(v); err != nil {
			return 0, 0, domain.InvalidArgument("page", "pageNumber must be an integer")
		}
	}
	if v := query.Get("pageSize"); v != "" {
		if pageSize, err = strconv.Atoi(v); err != nil {
			return 0, 0, domain.InvalidArgument("page", "pageSize must be an integer")
		}
	}
	return pageNumber, pageSize, nil
}
