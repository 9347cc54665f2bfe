package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-storefront-demo/models"
)

type memoryProductRepository struct {
	products []models.Product
}

// NewMemoryProductRepository returns a read-only ProductRepository over the
// built-in seed list.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{products: seedProducts}
}

func (r *memoryProductRepository) GetProduct(ctx context.Context, id int) (models.Product, error) {
	return findFirst(r.products, func(p models.Product) bool { return p.ID == id }, ErrProductNotFound)
}

func (r *memoryProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return slices.Clone(r.products), nil
}
