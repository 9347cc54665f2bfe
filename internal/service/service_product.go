package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
)

type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// GetProduct returns the seeded product with the given ID or a wrapped
// store.ErrProductNotFound.
func (p *productService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	product, err := p.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	return product, nil
}

func (p *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}
