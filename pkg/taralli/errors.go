package taralli

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrItemNotInBar indicates a caller passed a tab item that is not part of
	// the bar's current item sequence. This is a caller contract violation;
	// the bar's state is left untouched when it is returned.
	ErrItemNotInBar = errors.New("item is not in the tab bar's items")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with taralli itself (rendering failed, SDL crashed,
// font missing, etc.). These errors are typically fatal or require
// framework-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_scheme")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("taralli: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("taralli: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
