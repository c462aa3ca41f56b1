package callcenter_service

import (
	"time"

	"callcenter-service/domain/model"
)

// TicketRequest is the payload for creating or replacing a ticket
type TicketRequest struct {
	ID          int64     `json:"id" validate:"required,gt=0"`
	CustomerID  string    `json:"customer_id" validate:"required,max=64"`
	AgentID     *int64    `json:"agent_id,omitempty" validate:"omitempty,gt=0"`
	Status      string    `json:"status" validate:"required,oneof=Open InProgress Resolved Closed"`
	Priority    string    `json:"priority" validate:"required,oneof=Low Medium High"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `json:"description" validate:"required"`
	Resolution  *string   `json:"resolution,omitempty"`
}

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID          int64     `json:"id"`
	CustomerID  string    `json:"customer_id"`
	AgentID     *int64    `json:"agent_id"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `json:"description"`
	Resolution  *string   `json:"resolution"`
}

// TicketRequestToModel converts TicketRequest to model.Ticket. A missing
// updated_at defaults to created_at.
func TicketRequestToModel(req *TicketRequest) *model.Ticket {
	updatedAt := req.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = req.CreatedAt
	}
	return &model.Ticket{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		AgentID:     req.AgentID,
		Status:      model.TicketStatus(req.Status),
		Priority:    model.TicketPriority(req.Priority),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   updatedAt,
		Description: req.Description,
		Resolution:  req.Resolution,
	}
}

func TicketModelToResponse(ticket *model.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:          ticket.ID,
		CustomerID:  ticket.CustomerID,
		AgentID:     ticket.AgentID,
		Status:      string(ticket.Status),
		Priority:    string(ticket.Priority),
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		Description: ticket.Description,
		Resolution:  ticket.Resolution,
	}
}

func TicketModelsToResponses(tickets []model.Ticket) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *TicketModelToResponse(&tickets[i])
	}
	return responses
}
