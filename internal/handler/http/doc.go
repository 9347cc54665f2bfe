// Package http implements the REST transport of the storefront demo API.
//
// It wires chi routes for the auth, product, customer and supplier
// resources, wraps every response in the shared [models.Response] envelope
// and applies the cross-cutting middleware chain (panic recovery, request
// tracing, access logging, security headers, compression and an optional
// request timeout) before delegating to the service layer.
package http
