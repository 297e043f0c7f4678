package layout

import "fmt"

// ValidationError represents an assessment result that cannot be laid out:
// a missing required field, an empty dominant-styles list, or an incomplete
// counts map.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
