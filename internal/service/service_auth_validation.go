package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront-demo/internal/validators"
	"github.com/MKhiriev/go-storefront-demo/models"
)

// AuthValidationService rejects malformed auth requests before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

// Login is passed through unchanged: empty credentials simply fail to match.
func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error) {
	return v.inner.Login(ctx, request)
}

// RefreshToken returns ErrInvalidToken for a blank or whitespace-only token.
func (v *AuthValidationService) RefreshToken(ctx context.Context, request models.RefreshTokenRequest) (models.TokenResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrInvalidField) {
			return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return models.TokenResponse{}, fmt.Errorf("error validating refresh request: %w", err)
	}

	return v.inner.RefreshToken(ctx, request)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
