package raster

import (
	"fmt"
)

// ErrGrid indicates structurally invalid grid construction input.
type ErrGrid struct {
	Reason string
}

func (e *ErrGrid) Error() string {
	return fmt.Sprintf("invalid grid: %s", e.Reason)
}

// ErrEmptyCrop indicates a crop mask that does not cover the center of any
// cell in the grid extent.
type ErrEmptyCrop struct{}

func (e *ErrEmptyCrop) Error() string {
	return "crop mask does not intersect the grid extent"
}

// ErrMask indicates a crop mask geometry of a non-areal kind.
type ErrMask struct {
	Kind string
}

func (e *ErrMask) Error() string {
	return fmt.Sprintf("crop mask must be a Polygon or MultiPolygon, got %s", e.Kind)
}
