package models

// Response is the envelope every API endpoint answers with.
//
// The HTTP status code is carried by the response itself; the body only
// reports whether the call succeeded, a human-readable message and the
// payload. Message and Data are omitted when empty.
type Response struct {
	// Success is true for 2xx outcomes.
	Success bool `json:"success"`

	// Message is a short description of the outcome, e.g. "Product not found".
	Message string `json:"message,omitempty"`

	// Data holds the payload: a single entity, a list or a token.
	Data any `json:"data,omitempty"`
}

// OK builds a successful envelope around data.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope carrying only a message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
