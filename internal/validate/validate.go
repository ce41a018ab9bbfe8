// Package validate provides the result types every request validator
// returns: either a normalized value or a FieldError carrying the field
// name and the reason it was rejected. The handler boundary collapses a
// batch of such errors into the single user-facing message.
package validate

// FieldError describes one rejected input field. A FieldError with an
// empty Field is a non-field (whole-request) error.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

// NewFieldError builds an error bound to a named field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// NonField builds a whole-request error.
func NonField(reason string) *FieldError {
	return &FieldError{Reason: reason}
}

// Errors accumulates validator results in evaluation order.
type Errors []*FieldError

func (es Errors) Empty() bool { return len(es) == 0 }

// Message picks the single user-facing message: the first non-field error
// wins; otherwise the first field error in evaluation order.
func (es Errors) Message() string {
	if len(es) == 0 {
		return ""
	}
	for _, e := range es {
		if e.Field == "" {
			return e.Reason
		}
	}
	return es[0].Reason
}
