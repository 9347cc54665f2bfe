// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the storefront demo API.
//
// [ServerAdapter] hides the REST transport from the demo client: it encodes
// requests, unwraps the response envelope and maps HTTP statuses to the
// sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

// ServerAdapter is the storefront API as seen by the demo client.
type ServerAdapter interface {
	// SetToken stores the token sent by the next RefreshToken call.
	SetToken(token string)

	// Token returns the last token obtained from Login or RefreshToken.
	Token() string

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials models.LoginRequest) (models.TokenResponse, error)

	// RefreshToken trades the stored token for a new one and stores it.
	RefreshToken(ctx context.Context) (models.TokenResponse, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (models.Product, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int) (models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id int) (models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
