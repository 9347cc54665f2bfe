package service

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error)
	RefreshToken(ctx context.Context, request models.RefreshTokenRequest) (models.TokenResponse, error)
}

type ProductService interface {
	GetProduct(ctx context.Context, id int) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id int) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	// CreateCustomer assigns a fresh random ID to customer and returns it.
	// Nothing is stored.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
}

type SupplierService interface {
	GetSupplier(ctx context.Context, id int) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	// CreateSupplier assigns a fresh random ID to supplier and returns it.
	// Nothing is stored.
	CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenIssuer produces the token strings handed out by AuthService.
type TokenIssuer interface {
	// IssueLoginToken returns a token for a freshly authenticated user.
	IssueLoginToken(ctx context.Context, username string) (string, error)
	// IssueRefreshToken returns a token replacing previous. previous is not verified.
	IssueRefreshToken(ctx context.Context, previous string) (string, error)
}

// IDGenerator produces identifiers for created customers and suppliers.
type IDGenerator interface {
	NewID() int
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
