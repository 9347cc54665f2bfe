// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request before it reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON
	// for the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} path segment is not an integer.
	ErrInvalidID = errors.New("invalid identifier")

	errTrailingData = errors.New("unexpected data after top-level JSON value")
)
