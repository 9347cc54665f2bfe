package store

import "github.com/MKhiriev/go-storefront-demo/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	CustomerRepository CustomerRepository
	SupplierRepository SupplierRepository
}

// NewStorages builds the seeded in-memory repositories.
func NewStorages(logger *logger.Logger) *Storages {
	storages := &Storages{
		UserRepository:     NewMemoryUserRepository(),
		ProductRepository:  NewMemoryProductRepository(),
		CustomerRepository: NewMemoryCustomerRepository(),
		SupplierRepository: NewMemorySupplierRepository(),
	}

	logger.Info().
		Int("users", len(seedUsers)).
		Int("products", len(seedProducts)).
		Int("customers", len(seedCustomers)).
		Int("suppliers", len(seedSuppliers)).
		Msg("seeded in-memory storages created")

	return storages
}
