package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response), "Failed to decode response")
	return response
}

func TestApi_Success(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	New().Success(ctx, w, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code, "Expected status OK")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	response := decode(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
	assert.Equal(t, "req-1", response.RequestID, "request id should be echoed")
	assert.Equal(t, map[string]any{"key": "value"}, response.Data)
}

func TestApi_Created(t *testing.T) {
	w := httptest.NewRecorder()

	New().Created(context.Background(), w, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code, "Expected status Created")
	assert.Equal(t, StatusSuccess, decode(t, w).Status)
}

func TestApi_NoContent(t *testing.T) {
	w := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-2")

	New().NoContent(ctx, w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String(), "204 must not carry a body")
	assert.Equal(t, "req-2", w.Header().Get(middleware.RequestIDHeader))
}

func TestApi_ErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		send   func(a Api, w http.ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(a Api, w http.ResponseWriter) { a.BadRequest(context.Background(), w, "bad") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", func(a Api, w http.ResponseWriter) { a.NotFound(context.Background(), w, "missing") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(a Api, w http.ResponseWriter) { a.Conflict(context.Background(), w, "taken") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(a Api, w http.ResponseWriter) { a.InternalServerError(context.Background(), w, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.send(New(), w)

			assert.Equal(t, tt.status, w.Code)
			response := decode(t, w)
			assert.Equal(t, StatusError, response.Status)
			require.NotNil(t, response.Error, "Expected error in response")
			assert.Equal(t, tt.code, response.Error.Code)
			assert.Nil(t, response.Data)
		})
	}
}

func TestApi_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "email", Message: "Email must be a valid email address"}}

	New().ValidationError(context.Background(), w, details)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	response := decode(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	assert.Equal(t, details, response.Error.Details)
}
