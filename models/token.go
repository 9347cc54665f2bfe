package models

// RefreshTokenRequest is the body of POST /api/auth/refresh-token.
type RefreshTokenRequest struct {
	// Token is the previously issued token. Blank values are rejected.
	Token string `json:"token" validate:"notblank"`
}

// TokenResponse is the payload returned by login and refresh.
// It has the same JSON shape as [RefreshTokenRequest].
type TokenResponse struct {
	Token string `json:"token"`
}

// String returns the raw token value.
// It implements the [fmt.Stringer] interface.
func (t TokenResponse) String() string {
	return t.Token
}
