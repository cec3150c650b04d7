package schedule

import "fmt"

// FieldError reports which schedule field failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid schedule field %q: %s", e.Field, e.Reason)
}
