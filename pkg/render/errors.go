package render

import (
	"fmt"
)

// ErrUnmappedCategory indicates a category value present in a layer's data
// but absent from its color table. Raised at Finalize, before any pixel is
// produced: a silently defaulted color would make the map wrong.
type ErrUnmappedCategory struct {
	Layer int
	Value string
}

func (e *ErrUnmappedCategory) Error() string {
	return fmt.Sprintf("layer %d: category %q has no color table entry", e.Layer, e.Value)
}

// ErrFinalized indicates an AddLayer call on a finalized renderer.
type ErrFinalized struct{}

func (e *ErrFinalized) Error() string {
	return "renderer is finalized; no further layers can be added"
}

// ErrNoLayers indicates Finalize or Draw on a renderer with no layers.
type ErrNoLayers struct{}

func (e *ErrNoLayers) Error() string {
	return "renderer has no layers"
}

// ErrInvalidStyle indicates a style that cannot be resolved: unparseable
// color, missing color table, or a fill-by column that does not exist.
type ErrInvalidStyle struct {
	Layer  int
	Reason string
}

func (e *ErrInvalidStyle) Error() string {
	return fmt.Sprintf("layer %d: invalid style: %s", e.Layer, e.Reason)
}

// ErrLayer indicates a layer constructed without data.
type ErrLayer struct {
	Reason string
}

func (e *ErrLayer) Error() string {
	return fmt.Sprintf("invalid layer: %s", e.Reason)
}
