package service

import (
	"context"

	"github.com/MKhiriev/go-storefront-demo/models"
)

// fixedIDs returns the queued IDs in order and then repeats the last one.
type fixedIDs struct {
	ids []int
}

func (f *fixedIDs) NewID() int {
	id := f.ids[0]
	if len(f.ids) > 1 {
		f.ids = f.ids[1:]
	}
	return id
}

// stubIssuer is a TokenIssuer with overridable behaviour.
type stubIssuer struct {
	loginFn   func(ctx context.Context, username string) (string, error)
	refreshFn func(ctx context.Context, previous string) (string, error)
}

func (s *stubIssuer) IssueLoginToken(ctx context.Context, username string) (string, error) {
	return s.loginFn(ctx, username)
}

func (s *stubIssuer) IssueRefreshToken(ctx context.Context, previous string) (string, error) {
	return s.refreshFn(ctx, previous)
}

// stubAuthService records whether the wrapped service was reached.
type stubAuthService struct {
	called bool
}

func (s *stubAuthService) Login(context.Context, models.LoginRequest) (models.TokenResponse, error) {
	s.called = true
	return models.TokenResponse{Token: "login"}, nil
}

func (s *stubAuthService) RefreshToken(context.Context, models.RefreshTokenRequest) (models.TokenResponse, error) {
	s.called = true
	return models.TokenResponse{Token: "refresh"}, nil
}
