package feature

import (
	"fmt"

	"github.com/beetlebugorg/carto/pkg/geom"
)

// ErrCRSMismatch indicates an operation combining collections with different
// coordinate reference systems. Reproject one side explicitly first.
type ErrCRSMismatch struct {
	Left, Right geom.SRID
}

func (e *ErrCRSMismatch) Error() string {
	return fmt.Sprintf("CRS mismatch: %v vs %v (reproject explicitly before combining)", e.Left, e.Right)
}

// ErrSchema indicates a table whose attributes violate its declared schema.
type ErrSchema struct {
	Column string
	Reason string
}

func (e *ErrSchema) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema violation in column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("schema violation: %s", e.Reason)
}

// ErrTable indicates structurally inconsistent table construction input.
type ErrTable struct {
	Reason string
}

func (e *ErrTable) Error() string {
	return fmt.Sprintf("invalid table: %s", e.Reason)
}
