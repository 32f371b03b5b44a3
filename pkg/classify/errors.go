package classify

import (
	"fmt"
)

// ErrBreakpoint indicates an invalid breakpoint or label list.
type ErrBreakpoint struct {
	Reason string
}

func (e *ErrBreakpoint) Error() string {
	return fmt.Sprintf("invalid breakpoints: %s", e.Reason)
}
