package http

import (
	"net/http"

	"callcenter-service/contracts/callcenter_service"
	"callcenter-service/domain"
	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
	"callcenter-service/usecase"
)

// TicketHandler handles HTTP requests for ticket operations
type TicketHandler struct {
	TicketUseCase usecase.TicketUseCase
	Logger        logger.LoggerInterface
	API           api.Api
}

// NewTicketHandler creates a new instance of TicketHandler
func NewTicketHandler(ticketUseCase usecase.TicketUseCase, logger logger.LoggerInterface) *TicketHandler {
	return &TicketHandler{
		TicketUseCase: ticketUseCase,
		Logger:        logger,
		API:           api.NewWithLogger(logger),
	}
}

func (h *TicketHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List tickets handler called")

	tickets, err := h.TicketUseCase.ListTickets(ctx)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list tickets")
		return
	}
	h.API.Success(ctx, w, callcenter_service.TicketModelsToResponses(tickets))
}

// PagedHandler returns one page of tickets ordered by id.
// pageNumber below 1 is read as 1 and pageSize below 1 as 10.
func (h *TicketHandler) PagedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Paged tickets handler called")

	pageNumber, pageSize, err := pageParams(r)
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	page, err := h.TicketUseCase.GetTicketsPage(ctx, pageNumber, pageSize)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list tickets")
		return
	}
	h.API.Success(ctx, w, callcenter_service.PageToResponse(page, callcenter_service.TicketModelsToResponses))
}

func (h *TicketHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get ticket by ID handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	ticket, err := h.TicketUseCase.GetTicketByID(ctx, id)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to get ticket")
		return
	}
	h.API.Success(ctx, w, callcenter_service.TicketModelToResponse(ticket))
}

// CreateHandler creates a ticket. A ticket naming an unknown agent is rejected
// with 400.
func (h *TicketHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create ticket handler called")

	var req callcenter_service.TicketRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	ticket := callcenter_service.TicketRequestToModel(&req)
	if err := h.TicketUseCase.CreateTicket(ctx, ticket); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to create ticket")
		return
	}
	h.API.Created(ctx, w, callcenter_service.TicketModelToResponse(ticket))
}

func (h *TicketHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update ticket handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.TicketRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}
	if req.ID != id {
		h.Logger.WarnContext(ctx, "Ticket id mismatch", "path", id, "body", req.ID)
		h.API.BadRequest(ctx, w, domain.ErrIDMismatch.Message)
		return
	}

	if err := h.TicketUseCase.UpdateTicket(ctx, callcenter_service.TicketRequestToModel(&req)); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to update ticket")
		return
	}
	h.API.NoContent(ctx, w)
}

// AssignAgentHandler sets or clears the agent handling a ticket
func (h *TicketHandler) AssignAgentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Assign ticket agent handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.AssignAgentRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	if err := h.TicketUseCase.AssignTicketAgent(ctx, id, req.AgentID); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to assign agent")
		return
	}
	h.API.NoContent(ctx, w)
}

func (h *TicketHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete ticket handler called")

	id, err := int64Param(r, "id")
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	if err := h.TicketUseCase.DeleteTicket(ctx, id); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to delete ticket")
		return
	}
	h.API.NoContent(ctx, w)
}
