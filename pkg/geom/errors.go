package geom

import (
	"fmt"
)

// ErrInvalidGeometry indicates coordinate input that violates the
// simple-features rules for the requested kind.
type ErrInvalidGeometry struct {
	Kind   Kind
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Kind, e.Reason)
}

// ErrUnsupportedCast indicates a Recast between structurally incompatible
// kinds, e.g. Point to Polygon.
type ErrUnsupportedCast struct {
	From, To Kind
}

func (e *ErrUnsupportedCast) Error() string {
	return fmt.Sprintf("unsupported cast: %v to %v", e.From, e.To)
}

// ErrUnsupportedProjection indicates a reprojection between SRIDs that the
// library does not implement.
type ErrUnsupportedProjection struct {
	From, To SRID
}

func (e *ErrUnsupportedProjection) Error() string {
	return fmt.Sprintf("unsupported projection: SRID %d to SRID %d", e.From, e.To)
}
