// Package render turns feature tables and raster grids into images.
//
// A Renderer is a small state machine: layers are added while Composing,
// styles are resolved at Finalize, and Draw composites the layers in
// insertion order. Later layers draw over earlier ones; nothing reorders
// them. Rendering reads its inputs and never mutates them.
package render

import (
	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/geom"
	"github.com/beetlebugorg/carto/pkg/raster"
)

// LayerKind tags the two drawable kinds.
type LayerKind int

const (
	// VectorLayer draws a feature table.
	VectorLayer LayerKind = iota

	// RasterLayer draws a categorical raster grid.
	RasterLayer
)

// String returns the string representation of the layer kind.
func (k LayerKind) String() string {
	switch k {
	case VectorLayer:
		return "VectorLayer"
	case RasterLayer:
		return "RasterLayer"
	default:
		return "Unknown"
	}
}

// Layer pairs one drawable (a feature table or a categorical grid, by kind)
// with its style.
type Layer struct {
	kind  LayerKind
	table *feature.Table
	grid  *raster.CatGrid
	style Style
}

// NewVectorLayer wraps a feature table for drawing.
func NewVectorLayer(table *feature.Table, style Style) Layer {
	return Layer{kind: VectorLayer, table: table, style: style}
}

// NewRasterLayer wraps a categorical grid for drawing.
func NewRasterLayer(grid *raster.CatGrid, style Style) Layer {
	return Layer{kind: RasterLayer, grid: grid, style: style}
}

// Kind returns the layer's drawable kind.
func (l Layer) Kind() LayerKind {
	return l.kind
}

// bounds returns the world extent of the layer's data.
func (l Layer) bounds() geom.Bounds {
	switch l.kind {
	case VectorLayer:
		return l.table.Geometries().Bounds()
	case RasterLayer:
		return l.grid.Bounds()
	default:
		return geom.EmptyBounds()
	}
}
