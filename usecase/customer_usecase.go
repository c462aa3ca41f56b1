package usecase

import (
	"context"
	"strings"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/logger"
)

// CustomerUseCase defines business operations for customers
type CustomerUseCase interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	// DeleteCustomer removes the customer only. Calls and tickets that name
	// it are left as they are.
	DeleteCustomer(ctx context.Context, id string) error
}

type customerUseCase struct {
	entityUseCase[model.Customer, string]
}

// NewCustomerUseCase creates a new instance of customerUseCase
func NewCustomerUseCase(customerRepo repository.Customer, publisher event.Publisher, appLogger logger.LoggerInterface) CustomerUseCase {
	return &customerUseCase{
		entityUseCase: entityUseCase[model.Customer, string]{
			repo:      customerRepo,
			publisher: publisher,
			logger:    appLogger,
			entity:    "customer",
			events:    lifecycle{created: event.CustomerCreated, updated: event.CustomerUpdated, deleted: event.CustomerDeleted},
			validate: func(c *model.Customer) error {
				if strings.TrimSpace(c.ID) == "" {
					return domain.ErrInvalidID
				}
				return nil
			},
		},
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.list(ctx)
}

func (uc *customerUseCase) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	return uc.get(ctx, id)
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return uc.create(ctx, customer)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return uc.update(ctx, customer)
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.delete(ctx, id)
}
