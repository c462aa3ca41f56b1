package usecase

import (
	"context"
	"testing"

	"callcenter-service/domain"
	"callcenter-service/domain/model"
	"callcenter-service/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.customers.CreateCustomer(ctx, &model.Customer{ID: "  "}), domain.ErrInvalidID)

	customer := &model.Customer{ID: "CUST001", Name: "Maria Clara", Email: "mclara@test.com", PhoneNumber: "1234567890"}
	require.NoError(t, f.customers.CreateCustomer(ctx, customer))

	customer.LastContactDate = ptr(baseTime)
	require.NoError(t, f.customers.UpdateCustomer(ctx, customer))

	got, err := f.customers.GetCustomerByID(ctx, "CUST001")
	require.NoError(t, err)
	require.NotNil(t, got.LastContactDate)
	assert.True(t, baseTime.Equal(*got.LastContactDate))

	all, err := f.customers.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.customers.DeleteCustomer(ctx, "CUST001"))
	assert.ErrorIs(t, f.customers.DeleteCustomer(ctx, "CUST001"), domain.ErrNotFound)
	assert.ErrorIs(t, f.customers.UpdateCustomer(ctx, customer), domain.ErrNotFound)

	assert.Equal(t, []event.Type{event.CustomerCreated, event.CustomerUpdated, event.CustomerDeleted}, f.publisher.types())
	assert.Equal(t, map[string]any{"id": "CUST001"}, f.publisher.last().data)
}

func TestCustomerUseCase_DeleteKeepsCallsAndTickets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.customers.CreateCustomer(ctx, &model.Customer{ID: "CUST001", Name: "Maria Clara"}))
	require.NoError(t, f.calls.CreateCall(ctx, newCall(1, nil)))

	require.NoError(t, f.customers.DeleteCustomer(ctx, "CUST001"))

	call, err := f.calls.GetCallByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "CUST001", call.CustomerID)
}
