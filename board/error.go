package board

import "fmt"

// AssertionError is raised with panic when a board invariant is broken.
// It signals a programming or configuration defect, never a player mistake.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assertf(format string, args ...any) {
	panic(AssertionError{fmt.Sprintf(format, args...)})
}
