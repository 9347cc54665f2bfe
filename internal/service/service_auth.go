package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the seeded UserRepository and delegates
// token creation to a TokenIssuer.
type authService struct {
	// userRepository holds the seeded credential pairs.
	userRepository store.UserRepository

	// issuer produces placeholder or signed tokens.
	issuer TokenIssuer

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repository and
// token issuer. The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, issuer TokenIssuer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		issuer:         issuer,
		logger:         logger,
	}
}

// Login succeeds only for an exact seeded username/password pair.
//
// Returns:
//   - ErrInvalidCredentials if nothing matches;
//   - a wrapped ErrTokenCreationFailed if the issuer fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUser(ctx, request)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenResponse{}, ErrInvalidCredentials
		}
		return models.TokenResponse{}, fmt.Errorf("user search failed: %w", err)
	}

	token, err := a.issuer.IssueLoginToken(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("login token creation failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("username", user.Username).Msg("user logged in")

	return models.TokenResponse{Token: token}, nil
}

// RefreshToken issues a new token. The submitted token is not verified;
// blank tokens are rejected by the validation wrapper.
func (a *authService) RefreshToken(ctx context.Context, request models.RefreshTokenRequest) (models.TokenResponse, error) {
	token, err := a.issuer.IssueRefreshToken(ctx, request.Token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("refresh token creation failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{Token: token}, nil
}
