// Package callcenter_service contains request and response contracts for the call-center API
package callcenter_service

import (
	"callcenter-service/domain/model"
)

// AgentRequest is the payload for creating or replacing an agent
type AgentRequest struct {
	ID             int64  `json:"id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	PhoneExtension string `json:"phone_extension" validate:"omitempty,max=32"`
	Status         string `json:"status" validate:"required,oneof=Available Busy Offline"`
}

// UpdateAgentStatusRequest is the payload for changing only an agent's status
type UpdateAgentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Busy Offline"`
}

// AgentResponse represents an agent in API responses
type AgentResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneExtension string `json:"phone_extension"`
	Status         string `json:"status"`
}

// AgentRequestToModel converts AgentRequest to model.Agent
func AgentRequestToModel(req *AgentRequest) *model.Agent {
	return &model.Agent{
		ID:             req.ID,
		Name:           req.Name,
		Email:          req.Email,
		PhoneExtension: req.PhoneExtension,
		Status:         model.AgentStatus(req.Status),
	}
}

// AgentModelToResponse converts model.Agent to AgentResponse
func AgentModelToResponse(agent *model.Agent) *AgentResponse {
	return &AgentResponse{
		ID:             agent.ID,
		Name:           agent.Name,
		Email:          agent.Email,
		PhoneExtension: agent.PhoneExtension,
		Status:         string(agent.Status),
	}
}

// AgentModelsToResponses converts a slice of model.Agent to a slice of AgentResponse
func AgentModelsToResponses(agents []model.Agent) []AgentResponse {
	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *AgentModelToResponse(&agents[i])
	}
	return responses
}
