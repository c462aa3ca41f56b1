package postgres

import (
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/pkg/logger"

	"gorm.io/gorm"
)

type customerRepository struct {
	*genericRepository[model.Customer, string]
}

// NewCustomerRepository creates the customer accessor. Deleting a customer
// does not touch the calls and tickets that name it.
func NewCustomerRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Customer {
	return &customerRepository{
		genericRepository: newGenericRepository[model.Customer, string](db, logger, "customer"),
	}
}
