// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the request-body checks used by the service
// and transport layers.
//
// The checks are intentionally shallow: a body must be present and tagged
// fields must satisfy their struct tags (see [NewRequestValidator]). There is
// no format or business-rule validation.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
