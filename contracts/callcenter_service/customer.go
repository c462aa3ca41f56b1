package callcenter_service

import (
	"time"

	"callcenter-service/domain/model"
)

// CustomerRequest is the payload for creating or replacing a customer
type CustomerRequest struct {
	ID              string     `json:"id" validate:"required,min=1,max=64"`
	Name            string     `json:"name" validate:"required,min=1,max=255"`
	Email           string     `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber     string     `json:"phone_number" validate:"omitempty,max=32"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	LastContactDate *time.Time `json:"last_contact_date"`
}

func CustomerRequestToModel(req *CustomerRequest) *model.Customer {
	return &model.Customer{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		LastContactDate: req.LastContactDate,
	}
}

func CustomerModelToResponse(customer *model.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:              customer.ID,
		Name:            customer.Name,
		Email:           customer.Email,
		PhoneNumber:     customer.PhoneNumber,
		LastContactDate: customer.LastContactDate,
	}
}

func CustomerModelsToResponses(customers []model.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *CustomerModelToResponse(&customers[i])
	}
	return responses
}
