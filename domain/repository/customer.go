package repository

import (
	"callcenter-service/domain/model"
)

// Customer is the accessor for customers.
type Customer interface {
	Generic[model.Customer, string]
}
