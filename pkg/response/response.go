// Package response builds the uniform JSON envelope used by every endpoint:
//
//	{"success": bool, "message": string, "data"?: any, "errors"?: [...], "pagination"?: {...}}
package response

import (
	"github.com/jhoicas/straydog-api/pkg/pagination"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// FieldError is a single failing validation rule.
type FieldError = validation.FieldError

// Envelope wraps every response body, success or failure.
// Data uses omitempty on an interface: only a nil interface is dropped, so an
// empty slice still renders as "data": [].
type Envelope struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       any              `json:"data,omitempty"`
	Errors     []FieldError     `json:"errors,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// Format builds an envelope. Pass nil as data for "no data".
func Format(success bool, message string, data any) Envelope {
	return Envelope{Success: success, Message: message, Data: data}
}

// OK is Format(true, message, data).
func OK(message string, data any) Envelope {
	return Format(true, message, data)
}

// Fail is Format(false, message, nil).
func Fail(message string) Envelope {
	return Format(false, message, nil)
}

// ValidationFailed is the 400 body for rejected input.
func ValidationFailed(errs []FieldError) Envelope {
	return Envelope{Success: false, Message: "Validation failed", Errors: errs}
}

// Page renders a pagination result; Results is never nil so data is always present.
func Page[T any](message string, res *pagination.Result[T]) Envelope {
	items := res.Results
	if items == nil {
		items = []T{}
	}
	meta := res.Pagination
	return Envelope{Success: true, Message: message, Data: items, Pagination: &meta}
}
