package styles

import "fmt"

// UnknownStyleError indicates a style identifier outside the fixed catalog.
type UnknownStyleError struct {
	ID string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style: %q", e.ID)
}
