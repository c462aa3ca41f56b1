package http

import (
	"net/http"

	"callcenter-service/contracts/callcenter_service"
	"callcenter-service/domain"
	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
	"callcenter-service/usecase"
)

// CallHandler handles HTTP requests for call operations
type CallHandler struct {
	CallUseCase usecase.CallUseCase
	Logger      logger.LoggerInterface
	API         api.Api
}

// NewCallHandler creates a new instance of CallHandler
func NewCallHandler(callUseCase usecase.CallUseCase, logger logger.LoggerInterface) *CallHandler {
	return &CallHandler{
		CallUseCase: callUseCase,
		Logger:      logger,
		API:         api.NewWithLogger(logger),
	}
}

func (h *CallHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List calls handler called")

	calls, err := h.CallUseCase.ListCalls(ctx)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list calls")
		return
	}
	h.API.Success(ctx, w, callcenter_service.CallModelsToResponses(calls))
}

// PagedHandler returns one page of calls ordered by id.
// pageNumber below 1 is read as 1 and pageSize below 1 as 10.
func (h *CallHandler) PagedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Paged calls handler called")

	pageNumber, pageSize, err := pageParams(r)
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	page, err := h.CallUseCase.GetCallsPage(ctx, pageNumber, pageSize)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list calls")
		return
	}
	h.API.Success(ctx, w, callcenter_service.PageToResponse(page, callcenter_service.CallModelsToResponses))
}

func (h *CallHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get call by ID handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	call, err := h.CallUseCase.GetCallByID(ctx, id)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to get call")
		return
	}
	h.API.Success(ctx, w, callcenter_service.CallModelToResponse(call))
}

// CreateHandler creates a call. A call naming an unknown agent is rejected
// with 400.
func (h *CallHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create call handler called")

	var req callcenter_service.CallRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	call := callcenter_service.CallRequestToModel(&req)
	if err := h.CallUseCase.CreateCall(ctx, call); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to create call")
		return
	}
	h.API.Created(ctx, w, callcenter_service.CallModelToResponse(call))
}

func (h *CallHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update call handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.CallRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}
	if req.ID != id {
		h.Logger.WarnContext(ctx, "Call id mismatch", "path", id, "body", req.ID)
		h.API.BadRequest(ctx, w, domain.ErrIDMismatch.Message)
		return
	}

	if err := h.CallUseCase.UpdateCall(ctx, callcenter_service.CallRequestToModel(&req)); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to update call")
		return
	}
	h.API.NoContent(ctx, w)
}

// AssignAgentHandler sets or clears the agent handling a call
func (h *CallHandler) AssignAgentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Assign call agent handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.AssignAgentRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	if err := h.CallUseCase.AssignCallAgent(ctx, id, req.AgentID); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to assign agent")
		return
	}
	h.API.NoContent(ctx, w)
}

func (h *CallHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete call handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	if err := h.CallUseCase.DeleteCall(ctx, id); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to delete call")
		return
	}
	h.API.NoContent(ctx, w)
}
