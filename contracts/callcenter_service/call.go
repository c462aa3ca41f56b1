package callcenter_service

import (
	"time"

	"callcenter-service/domain/model"
)

// CallRequest is the payload for creating or replacing a call
type CallRequest struct {
	ID         int64      `json:"id" validate:"required,gt=0"`
	CustomerID string     `json:"customer_id" validate:"required,max=64"`
	AgentID    *int64     `json:"agent_id,omitempty" validate:"omitempty,gt=0"`
	StartTime  time.Time  `json:"start_time" validate:"required"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Status     string     `json:"status" validate:"required,oneof=Queued InProgress Completed Dropped"`
	Notes      string     `json:"notes"`
}

// CallResponse represents a call in API responses
type CallResponse struct {
	ID         int64      `json:"id"`
	CustomerID string     `json:"customer_id"`
	AgentID    *int64     `json:"agent_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
}

func CallRequestToModel(req *CallRequest) *model.Call {
	return &model.Call{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		AgentID:    req.AgentID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     model.CallStatus(req.Status),
		Notes:      req.Notes,
	}
}

func CallModelToResponse(call *model.Call) *CallResponse {
	return &CallResponse{
		ID:         call.ID,
		CustomerID: call.CustomerID,
		AgentID:    call.AgentID,
		StartTime:  call.StartTime,
		EndTime:    call.EndTime,
		Status:     string(call.Status),
		Notes:      call.Notes,
	}
}

func CallModelsToResponses(calls []model.Call) []CallResponse {
	responses := make([]CallResponse, len(calls))
	for i := range calls {
		responses[i] = *CallModelToResponse(&calls[i])
	}
	return responses
}
