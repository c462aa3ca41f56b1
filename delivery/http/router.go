package http

import (
	"net/http"

	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/metrics"
	appmiddleware "callcenter-service/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	AgentHandler    *AgentHandler
	CustomerHandler *CustomerHandler
	CallHandler     *CallHandler
	TicketHandler   *TicketHandler
	HealthHandler   *HealthHandler
	// Metrics is optional; without it /metrics is not served
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	AppLogger      logger.LoggerInterface
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(LoggingMiddleware(r.AppLogger))
	if r.Metrics != nil {
		router.Use(r.Metrics.Middleware)
	}
	router.Use(appmiddleware.CORS(r.AllowedOrigins))

	router.Get("/health", r.HealthHandler.HealthCheckHandler)
	if r.Metrics != nil {
		router.Handle("/metrics", r.Metrics.Handler())
	}

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/agents", func(agents chi.Router) {
			agents.Get("/", r.AgentHandler.ListHandler)
			agents.Post("/", r.AgentHandler.CreateHandler)
			agents.Get("/{id}", r.AgentHandler.GetByIDHandler)
			agents.Put("/{id}", r.AgentHandler.UpdateHandler)
			agents.Patch("/{id}/status", r.AgentHandler.UpdateStatusHandler)
			agents.Delete("/{id}", r.AgentHandler.DeleteHandler)
		})
		api.Route("/customers", func(customers chi.Router) {
			customers.Get("/", r.CustomerHandler.ListHandler)
			customers.Post("/", r.CustomerHandler.CreateHandler)
			customers.Get("/{id}", r.CustomerHandler.GetByIDHandler)
			customers.Put("/{id}", r.CustomerHandler.UpdateHandler)
			customers.Delete("/{id}", r.CustomerHandler.DeleteHandler)
		})
		api.Route("/calls", func(calls chi.Router) {
			calls.Get("/", r.CallHandler.ListHandler)
			calls.Get("/paged", r.CallHandler.PagedHandler)
			calls.Post("/", r.CallHandler.CreateHandler)
			calls.Get("/{id}", r.CallHandler.GetByIDHandler)
			calls.Put("/{id}", r.CallHandler.UpdateHandler)
			calls.Patch("/{id}/agent", r.CallHandler.AssignAgentHandler)
			calls.Delete("/{id}", r.CallHandler.DeleteHandler)
		})
		api.Route("/tickets", func(tickets chi.Router) {
			tickets.Get("/", r.TicketHandler.ListHandler)
			tickets.Get("/paged", r.TicketHandler.PagedHandler)
			tickets.Post("/", r.TicketHandler.CreateHandler)
			tickets.Get("/{id}", r.TicketHandler.GetByIDHandler)
			tickets.Put("/{id}", r.TicketHandler.UpdateHandler)
			tickets.Patch("/{id}/agent", r.TicketHandler.AssignAgentHandler)
			tickets.Delete("/{id}", r.TicketHandler.DeleteHandler)
		})
	})
	return router
}
