package store

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

// UserRepository looks up seeded credential pairs.
type UserRepository interface {
	// FindUser returns the seeded pair equal to creds or ErrNoUserWasFound.
	FindUser(ctx context.Context, creds models.Credentials) (models.Credentials, error)
}

type ProductRepository interface {
	GetProduct(ctx context.Context, id int) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type CustomerRepository interface {
	GetCustomer(ctx context.Context, id int) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type SupplierRepository interface {
	GetSupplier(ctx context.Context, id int) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}
