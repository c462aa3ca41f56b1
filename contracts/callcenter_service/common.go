package callcenter_service

import "callcenter-service/domain/model"

// AssignAgentRequest sets the agent of a call or ticket. A null agent_id
// leaves it unassigned.
type AssignAgentRequest struct {
	AgentID *int64 `json:"agent_id" validate:"omitempty,gt=0"`
}

// PageResponse is one page of a paged listing
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
}

// PageToResponse converts a model page, mapping each item with convert.
func PageToResponse[M, R any](page *model.Page[M], convert func([]M) []R) PageResponse[R] {
	return PageResponse[R]{
		Items:      convert(page.Items),
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
