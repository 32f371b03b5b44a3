package render

import (
	"fmt"
	"image/color"

	"github.com/beetlebugorg/carto/pkg/feature"
)

// State is the renderer lifecycle state.
type State int

const (
	// StateEmpty means no layers have been added.
	StateEmpty State = iota

	// StateComposing means at least one layer has been added.
	StateComposing

	// StateFinalized means styles are resolved and the renderer is ready to
	// draw. No further layers can be added.
	StateFinalized
)

// String returns the string representation of the renderer state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateComposing:
		return "Composing"
	case StateFinalized:
		return "Finalized"
	default:
		return "Unknown"
	}
}

// RenderOptions configures output defaults.
type RenderOptions struct {
	// Background is the canvas color; empty means transparent.
	Background string

	// Padding is the margin in pixels around the fitted extent.
	Padding int
}

// DefaultRenderOptions returns a white canvas with a small margin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Background: "#ffffff", Padding: 8}
}

// Renderer composes styled layers into an image.
type Renderer struct {
	state    State
	layers   []Layer
	resolved []resolvedStyle
	opts     RenderOptions
}

// NewRenderer creates a renderer with default options.
func NewRenderer() *Renderer {
	return NewRendererWithOptions(DefaultRenderOptions())
}

// NewRendererWithOptions creates a renderer with custom output options.
func NewRendererWithOptions(opts RenderOptions) *Renderer {
	return &Renderer{state: StateEmpty, opts: opts}
}

// State returns the current lifecycle state.
func (r *Renderer) State() State {
	return r.state
}

// AddLayer appends a layer. Layers draw in the order they are added.
// Fails with ErrFinalized once Finalize has run.
func (r *Renderer) AddLayer(l Layer) error {
	if r.state == StateFinalized {
		return &ErrFinalized{}
	}
	switch l.kind {
	case VectorLayer:
		if l.table == nil {
			return &ErrLayer{Reason: "vector layer has no table"}
		}
	case RasterLayer:
		if l.grid == nil {
			return &ErrLayer{Reason: "raster layer has no grid"}
		}
	}
	r.layers = append(r.layers, l)
	r.state = StateComposing
	return nil
}

// Finalize resolves every layer's style and validates color tables against
// the layer data. Idempotent once finalized.
//
// Validation errors surface here, before any drawing: an attribute value or
// cell category missing from its color table fails with ErrUnmappedCategory.
func (r *Renderer) Finalize() error {
	if r.state == StateFinalized {
		return nil
	}
	if r.state == StateEmpty {
		return &ErrNoLayers{}
	}

	resolved := make([]resolvedStyle, len(r.layers))
	for i, layer := range r.layers {
		rs, err := r.resolveStyle(i, layer)
		if err != nil {
			return err
		}
		resolved[i] = rs
	}

	r.resolved = resolved
	r.state = StateFinalized
	return nil
}

func (r *Renderer) resolveStyle(i int, layer Layer) (resolvedStyle, error) {
	var rs resolvedStyle
	style := layer.style

	if style.Stroke != "" {
		c, err := parseColor(style.Stroke)
		if err != nil {
			return rs, &ErrInvalidStyle{Layer: i, Reason: fmt.Sprintf("stroke: %v", err)}
		}
		rs.stroke, rs.hasStroke = c, true
	}
	if style.Fill != "" {
		c, err := parseColor(style.Fill)
		if err != nil {
			return rs, &ErrInvalidStyle{Layer: i, Reason: fmt.Sprintf("fill: %v", err)}
		}
		rs.fill, rs.hasFill = c, true
	}
	rs.strokeWidth = style.StrokeWidth
	if rs.strokeWidth < 0 {
		return rs, &ErrInvalidStyle{Layer: i, Reason: "negative stroke width"}
	}

	switch layer.kind {
	case VectorLayer:
		if style.FillBy == "" {
			break
		}
		col, ok := layer.table.Schema().Column(style.FillBy)
		if !ok {
			return rs, &ErrInvalidStyle{Layer: i, Reason: fmt.Sprintf("fill-by column %q does not exist", style.FillBy)}
		}
		if col.Type != feature.ColumnText {
			return rs, &ErrInvalidStyle{Layer: i, Reason: fmt.Sprintf("fill-by column %q is not a Text column", style.FillBy)}
		}
		cats, err := layer.table.Categories(style.FillBy)
		if err != nil {
			return rs, &ErrInvalidStyle{Layer: i, Reason: err.Error()}
		}
		table, err := r.resolveTable(i, style.ColorTable, cats)
		if err != nil {
			return rs, err
		}
		rs.fillBy = style.FillBy
		rs.table = table

	case RasterLayer:
		if len(style.ColorTable) == 0 {
			return rs, &ErrInvalidStyle{Layer: i, Reason: "raster layer requires a color table"}
		}
		table, err := r.resolveTable(i, style.ColorTable, layer.grid.Categories())
		if err != nil {
			return rs, err
		}
		rs.table = table
	}

	return rs, nil
}

// resolveTable parses a color table and checks that every category present
// in the data has an entry. The NoCategory marker is exempt: it renders
// transparent by design of the data model, not via the table.
func (r *Renderer) resolveTable(i int, table map[string]string, categories []string) (map[string]color.RGBA, error) {
	out := make(map[string]color.RGBA, len(table))
	for cat, hex := range table {
		c, err := parseColor(hex)
		if err != nil {
			return nil, &ErrInvalidStyle{Layer: i, Reason: fmt.Sprintf("color table entry %q: %v", cat, err)}
		}
		out[cat] = c
	}
	for _, cat := range categories {
		if _, ok := out[cat]; !ok {
			return nil, &ErrUnmappedCategory{Layer: i, Value: cat}
		}
	}
	return out, nil
}
