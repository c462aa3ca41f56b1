package http

import (
	"net/http"

	"callcenter-service/contracts/callcenter_service"
	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
	"callcenter-service/usecase"
)

// AgentHandler handles HTTP requests for agent operations
type AgentHandler struct {
	// AgentUseCase contains business logic for agent operations
	AgentUseCase usecase.AgentUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewAgentHandler creates a new instance of AgentHandler
func NewAgentHandler(agentUseCase usecase.AgentUseCase, logger logger.LoggerInterface) *AgentHandler {
	return &AgentHandler{
		AgentUseCase: agentUseCase,
		Logger:       logger,
		API:          api.NewWithLogger(logger),
	}
}

// ListHandler returns every agent
func (h *AgentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List agents handler called")

	agents, err := h.AgentUseCase.ListAgents(ctx)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list agents")
		return
	}
	h.API.Success(ctx, w, callcenter_service.AgentModelsToResponses(agents))
}

// GetByIDHandler returns one agent
// Returns a 404 status code if the agent is not found
func (h *AgentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get agent by ID handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	agent, err := h.AgentUseCase.GetAgentByID(ctx, id)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to get agent")
		return
	}
	h.API.Success(ctx, w, callcenter_service.AgentModelToResponse(agent))
}

// CreateHandler creates an agent under the id given in the body
// Returns a 201 status code with the created agent on success
// Returns a 409 status code when the id is taken
// Returns a 422 status code for validation errors
func (h *AgentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create agent handler called")

	var req callcenter_service.AgentRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	agent := callcenter_service.AgentRequestToModel(&req)
	if err := h.AgentUseCase.CreateAgent(ctx, agent); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to create agent")
		return
	}

	h.Logger.InfoContext(ctx, "Agent created successfully in handler", "id", agent.ID)
	h.API.Created(ctx, w, callcenter_service.AgentModelToResponse(agent))
}

// UpdateHandler replaces an agent
// Returns a 204 status code on success
// Returns a 400 status code when the path and body ids differ
// Returns a 404 status code if the agent is not found
func (h *AgentHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update agent handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.AgentRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}
	if req.ID != id {
		h.Logger.WarnContext(ctx, "Agent id mismatch", "path", id, "body", req.ID)
		h.API.BadRequest(ctx, w, domain.ErrIDMismatch.Message)
		return
	}

	if err := h.AgentUseCase.UpdateAgent(ctx, callcenter_service.AgentRequestToModel(&req)); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to update agent")
		return
	}
	h.API.NoContent(ctx, w)
}

// UpdateStatusHandler changes only the agent's status
func (h *AgentHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update agent status handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.UpdateAgentStatusRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	if err := h.AgentUseCase.UpdateAgentStatus(ctx, id, model.AgentStatus(req.Status)); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to update agent status")
		return
	}
	h.API.NoContent(ctx, w)
}

// DeleteHandler deletes an agent. Calls and tickets assigned to it become
// unassigned.
// Returns a 204 status code on success
// Returns a 404 status code if the agent is not found
func (h *AgentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete agent handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	removal, err := h.AgentUseCase.DeleteAgent(ctx, id)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to delete agent")
		return
	}

	h.Logger.InfoContext(ctx, "Agent deleted successfully in handler", "id", id, "cleared", removal.Cleared)
	h.API.NoContent(ctx, w)
}
