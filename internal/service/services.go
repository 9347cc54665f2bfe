package service

import (
	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/internal/validators"
	"github.com/MKhiriev/go-storefront-demo/models"
)

type Services struct {
	AuthService     AuthService
	ProductService  ProductService
	CustomerService CustomerService
	SupplierService SupplierService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	ids := NewRandomIDGenerator()

	authService := NewAuthService(storages.UserRepository, NewTokenIssuer(cfg), logger)
	authService = NewAuthValidationService(validators.NewRequestValidator()).Wrap(authService)

	logger.Info().Bool("signed_tokens", cfg.TokenSignKey != "").Msg("services created")

	return &Services{
		AuthService:     authService,
		ProductService:  NewProductService(storages.ProductRepository, logger),
		CustomerService: NewCustomerService(storages.CustomerRepository, ids, logger),
		SupplierService: NewSupplierService(storages.SupplierRepository, ids, logger),
		AppInfoService:  NewAppInfoService(buildInfo),
	}
}
