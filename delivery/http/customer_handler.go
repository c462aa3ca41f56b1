package http

import (
	"net/http"
	"strings"

	"callcenter-service/contracts/callcenter_service"
	"callcenter-service/domain"
	"callcenter-service/pkg/api"
	"callcenter-service/pkg/logger"
	"callcenter-service/usecase"

	"github.com/go-chi/chi/v5"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	CustomerUseCase usecase.CustomerUseCase
	Logger          logger.LoggerInterface
	API             api.Api
}

// NewCustomerHandler creates a new instance of CustomerHandler
func NewCustomerHandler(customerUseCase usecase.CustomerUseCase, logger logger.LoggerInterface) *CustomerHandler {
	return &CustomerHandler{
		CustomerUseCase: customerUseCase,
		Logger:          logger,
		API:             api.NewWithLogger(logger),
	}
}

func customerID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", domain.ErrInvalidID
	}
	return id, nil
}

func (h *CustomerHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List customers handler called")

	customers, err := h.CustomerUseCase.ListCustomers(ctx)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to list customers")
		return
	}
	h.API.Success(ctx, w, callcenter_service.CustomerModelsToResponses(customers))
}

func (h *CustomerHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get customer by ID handler called")

	id, err := customerID(r)
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	customer, err := h.CustomerUseCase.GetCustomerByID(ctx, id)
	if err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to get customer")
		return
	}
	h.API.Success(ctx, w, callcenter_service.CustomerModelToResponse(customer))
}

func (h *CustomerHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create customer handler called")

	var req callcenter_service.CustomerRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}

	customer := callcenter_service.CustomerRequestToModel(&req)
	if err := h.CustomerUseCase.CreateCustomer(ctx, customer); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to create customer")
		return
	}
	h.API.Created(ctx, w, callcenter_service.CustomerModelToResponse(customer))
}

func (h *CustomerHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update customer handler called")

	id, err := customerID(r)
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	var req callcenter_service.CustomerRequest
	if !decodeAndValidate(ctx, w, r, h.API, h.Logger, &req) {
		return
	}
	if req.ID != id {
		h.Logger.WarnContext(ctx, "Customer id mismatch", "path", id, "body", req.ID)
		h.API.BadRequest(ctx, w, domain.ErrIDMismatch.Message)
		return
	}

	if err := h.CustomerUseCase.UpdateCustomer(ctx, callcenter_service.CustomerRequestToModel(&req)); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to update customer")
		return
	}
	h.API.NoContent(ctx, w)
}

// DeleteHandler deletes a customer. Its calls and tickets are kept.
func (h *CustomerHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete customer handler called")

	id, err := customerID(r)
	if err != nil {
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	if err := h.CustomerUseCase.DeleteCustomer(ctx, id); err != nil {
		handleError(ctx, w, h.API, h.Logger, err, "Failed to delete customer")
		return
	}
	h.API.NoContent(ctx, w)
}
