package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
)

// Placeholder tokens handed out when no signing key is configured.
const (
	PlaceholderLoginToken   = "SOME_JWT_TOKEN"
	PlaceholderRefreshToken = "NEW_JWT_TOKEN"
)

// NewTokenIssuer returns a JWT issuer when cfg carries a signing key and the
// placeholder issuer otherwise.
func NewTokenIssuer(cfg config.App) TokenIssuer {
	if cfg.TokenSignKey == "" {
		return placeholderIssuer{}
	}

	return &jwtIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// placeholderIssuer returns fixed opaque strings.
type placeholderIssuer struct{}

func (placeholderIssuer) IssueLoginToken(context.Context, string) (string, error) {
	return PlaceholderLoginToken, nil
}

func (placeholderIssuer) IssueRefreshToken(context.Context, string) (string, error) {
	return PlaceholderRefreshToken, nil
}

// jwtIssuer signs HS256 tokens. The subject of a login token is the
// username; refresh tokens carry no subject because the previous token is
// never parsed.
type jwtIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func (j *jwtIssuer) IssueLoginToken(_ context.Context, username string) (string, error) {
	return utils.GenerateJWTToken(j.issuer, username, j.duration, j.signKey)
}

func (j *jwtIssuer) IssueRefreshToken(_ context.Context, _ string) (string, error) {
	return utils.GenerateJWTToken(j.issuer, "", j.duration, j.signKey)
}
