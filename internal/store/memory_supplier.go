package store

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

type memorySupplierRepository struct {
	suppliers []models.Supplier
}

// NewMemorySupplierRepository returns a read-only SupplierRepository over
// the built-in seed list.
func NewMemorySupplierRepository() SupplierRepository {
	return &memorySupplierRepository{suppliers: seedSuppliers}
}

func (r *memorySupplierRepository) GetSupplier(ctx context.Context, id int) (models.Supplier, error) {
	s, err := findFirst(r.suppliers, func(s models.Supplier) bool {
		sid, ok := s.ID()
		return ok && sid == id
	}, ErrSupplierNotFound)
	if err != nil {
		return models.Supplier{}, err
	}
	return copySupplier(s), nil
}

// ListSuppliers returns deep copies: SupplierID is a pointer and must not
// alias the seed.
func (r *memorySupplierRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	out := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, copySupplier(s))
	}
	return out, nil
}

func copySupplier(s models.Supplier) models.Supplier {
	if id, ok := s.ID(); ok {
		return s.WithID(id)
	}
	return s
}
