package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

// apiSecurityOptions are the response hardening headers sent with every
// API response. The API serves JSON only, so no resources may be loaded.
var apiSecurityOptions = secure.Options{
	FrameDeny:             true,
	ContentTypeNosniff:    true,
	BrowserXssFilter:      true,
	ReferrerPolicy:        "no-referrer",
	ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
}

func (h *Handler) withSecureHeaders(next http.Handler) http.Handler {
	return secure.New(apiSecurityOptions).Handler(next)
}
