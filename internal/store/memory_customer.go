package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-storefront-demo/models"
)

type memoryCustomerRepository struct {
	customers []models.Customer
}

// NewMemoryCustomerRepository returns a read-only CustomerRepository over
// the built-in seed list.
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{customers: seedCustomers}
}

func (r *memoryCustomerRepository) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	return findFirst(r.customers, func(c models.Customer) bool { return c.CustomerID == id }, ErrCustomerNotFound)
}

func (r *memoryCustomerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return slices.Clone(r.customers), nil
}
