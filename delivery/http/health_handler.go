package http

import (
	"context"
	"net/http"
	"time"

	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles HTTP requests for health check operations
type HealthHandler struct {
	// Database is checked on every health request
	Database Pinger
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(database Pinger, appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		Database: database,
		Logger:   appLogger,
		API:      api.NewWithLogger(appLogger),
	}
}

// HealthCheckHandler reports 200 when the database answers a ping and 503
// otherwise
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	h.Logger.DebugContext(ctx, "Health check endpoint called")

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.Database.Ping(pingCtx); err != nil {
		h.Logger.ErrorContext(ctx, "Health check failed", "error", err)
		h.API.Error(ctx, w, http.StatusServiceUnavailable, &api.Error{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "database is unreachable",
		})
		return
	}

	h.API.Success(ctx, w, map[string]any{
		"status":   "healthy",
		"database": "up",
	})
}
