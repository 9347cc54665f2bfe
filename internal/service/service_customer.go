package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	ids                IDGenerator

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, ids IDGenerator, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		ids:                ids,
		logger:             logger,
	}
}

func (c *customerService) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	customer, err := c.customerRepository.GetCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}

	return customer, nil
}

func (c *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := c.customerRepository.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

// CreateCustomer overwrites any client-supplied ID. The repository is not
// touched, so later lookups never see the created customer.
func (c *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	created := customer.WithID(c.ids.NewID())

	logger.FromContext(ctx).Debug().Int("id", created.CustomerID).Msg("customer id assigned")

	return created, nil
}
