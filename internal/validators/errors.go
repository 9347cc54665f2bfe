package validators

import "errors"

var (
	// ErrEmptyBody is returned for a missing payload (nil or nil pointer).
	ErrEmptyBody = errors.New("empty request body")

	// ErrInvalidField is returned when a struct tag rule fails.
	ErrInvalidField = errors.New("invalid field")

	// ErrUnsupportedType is returned for payloads that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
