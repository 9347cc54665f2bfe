package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/internal/validators"
	"github.com/MKhiriev/go-storefront-demo/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaceholderAuth() AuthService {
	inner := NewAuthService(store.NewMemoryUserRepository(), NewTokenIssuer(config.App{}), logger.Nop())
	return NewAuthValidationService(validators.NewRequestValidator()).Wrap(inner)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_SeededPairsSucceed(t *testing.T) {
	auth := newPlaceholderAuth()

	for _, creds := range []models.LoginRequest{
		{Username: "root", Password: "root123"},
		{Username: "admin", Password: "admin123"},
		{Username: "tester", Password: "test123"},
	} {
		got, err := auth.Login(context.Background(), creds)
		require.NoError(t, err, creds.Username)
		assert.Equal(t, PlaceholderLoginToken, got.Token)
	}
}

func TestLogin_MismatchFails(t *testing.T) {
	auth := newPlaceholderAuth()

	for _, creds := range []models.LoginRequest{
		{Username: "root", Password: "admin123"},
		{Username: "tester", Password: "test1234"},
		{Username: "nobody", Password: "root123"},
		{},
	} {
		_, err := auth.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLogin_IssuerFailure(t *testing.T) {
	issuer := &stubIssuer{loginFn: func(context.Context, string) (string, error) {
		return "", errors.New("hsm offline")
	}}
	auth := NewAuthService(store.NewMemoryUserRepository(), issuer, logger.Nop())

	_, err := auth.Login(context.Background(), models.LoginRequest{Username: "root", Password: "root123"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestLogin_PassesUsernameToIssuer(t *testing.T) {
	var got string
	issuer := &stubIssuer{loginFn: func(_ context.Context, username string) (string, error) {
		got = username
		return "t", nil
	}}
	auth := NewAuthService(store.NewMemoryUserRepository(), issuer, logger.Nop())

	_, err := auth.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", got)
}

// ─────────────────────────────────────────────
// RefreshToken
// ─────────────────────────────────────────────

func TestRefreshToken_NonBlankSucceeds(t *testing.T) {
	auth := newPlaceholderAuth()

	for _, token := range []string{"SOME_JWT_TOKEN", "x", "  padded  "} {
		got, err := auth.RefreshToken(context.Background(), models.RefreshTokenRequest{Token: token})
		require.NoError(t, err)
		assert.Equal(t, PlaceholderRefreshToken, got.Token)
	}
}

func TestRefreshToken_BlankFails(t *testing.T) {
	auth := newPlaceholderAuth()

	for _, token := range []string{"", " ", "\t\n"} {
		_, err := auth.RefreshToken(context.Background(), models.RefreshTokenRequest{Token: token})
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestAuthValidationService_BlankTokenNeverReachesInner(t *testing.T) {
	inner := &stubAuthService{}
	auth := NewAuthValidationService(validators.NewRequestValidator()).Wrap(inner)

	_, err := auth.RefreshToken(context.Background(), models.RefreshTokenRequest{Token: " "})

	require.Error(t, err)
	assert.False(t, inner.called)
}

func TestAuthValidationService_LoginPassesThrough(t *testing.T) {
	inner := &stubAuthService{}
	auth := NewAuthValidationService(validators.NewRequestValidator()).Wrap(inner)

	got, err := auth.Login(context.Background(), models.LoginRequest{})

	require.NoError(t, err)
	assert.True(t, inner.called)
	assert.Equal(t, "login", got.Token)
}

func TestRefreshToken_IssuerFailure(t *testing.T) {
	issuer := &stubIssuer{refreshFn: func(context.Context, string) (string, error) {
		return "", errors.New("boom")
	}}
	auth := NewAuthService(store.NewMemoryUserRepository(), issuer, logger.Nop())

	_, err := auth.RefreshToken(context.Background(), models.RefreshTokenRequest{Token: "abc"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// token issuers
// ─────────────────────────────────────────────

func TestNewTokenIssuer_PlaceholderWithoutKey(t *testing.T) {
	issuer := NewTokenIssuer(config.App{TokenIssuer: "x", TokenDuration: time.Hour})

	login, err := issuer.IssueLoginToken(context.Background(), "root")
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken(context.Background(), login)
	require.NoError(t, err)

	assert.Equal(t, "SOME_JWT_TOKEN", login)
	assert.Equal(t, "NEW_JWT_TOKEN", refresh)
}

func TestNewTokenIssuer_SignedWithKey(t *testing.T) {
	issuer := NewTokenIssuer(config.App{TokenSignKey: "secret", TokenIssuer: "storefront-test", TokenDuration: time.Hour})

	signed, err := issuer.IssueLoginToken(context.Background(), "tester")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("storefront-test"))
	require.NoError(t, err)
	assert.Equal(t, "tester", claims.Subject)

	refreshed, err := issuer.IssueRefreshToken(context.Background(), signed)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed)
}
