// Package server runs the HTTP transport of the storefront demo API.
//
// It owns the listener lifecycle: startup, stop-signal handling and a
// graceful shutdown bounded by the configured timeout.
package server
