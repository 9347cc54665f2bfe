package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
)

type supplierService struct {
	supplierRepository store.SupplierRepository
	ids                IDGenerator

	logger *logger.Logger
}

func NewSupplierService(supplierRepository store.SupplierRepository, ids IDGenerator, logger *logger.Logger) SupplierService {
	return &supplierService{
		supplierRepository: supplierRepository,
		ids:                ids,
		logger:             logger,
	}
}

func (s *supplierService) GetSupplier(ctx context.Context, id int) (models.Supplier, error) {
	supplier, err := s.supplierRepository.GetSupplier(ctx, id)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("get supplier %d: %w", id, err)
	}

	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.supplierRepository.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	return suppliers, nil
}

// CreateSupplier works like CustomerService.CreateCustomer.
func (s *supplierService) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	id := s.ids.NewID()

	logger.FromContext(ctx).Debug().Int("id", id).Msg("supplier id assigned")

	return supplier.WithID(id), nil
}
