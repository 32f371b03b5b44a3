package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style declares how a layer is drawn. Colors are hex strings ("#1f77b4");
// an empty color means "do not draw that component". Styles are resolved
// once, at Finalize.
type Style struct {
	// Stroke is the outline color for polygons and the line color for
	// linestrings and points.
	Stroke string

	// Fill is the interior color for polygons, ignored for other kinds,
	// and the fallback cell color for raster layers without a FillBy table.
	Fill string

	// StrokeWidth is the stroke thickness in pixels. Zero means hairline.
	StrokeWidth float64

	// FillBy names a Text attribute column (vector layers only). When set,
	// each feature's fill color is looked up in ColorTable by its attribute
	// value; a value with no entry is an error, not a default.
	FillBy string

	// ColorTable maps category values to hex colors. Required for raster
	// layers and for vector layers with FillBy set. The NoCategory marker
	// never appears in the table; such cells and features render
	// transparent.
	ColorTable map[string]string
}

// RampTable builds a color table for ordered labels by blending between two
// hex colors in Lab space, first label taking from, last taking to.
func RampTable(labels []string, from, to string) (map[string]string, error) {
	lo, err := colorful.Hex(from)
	if err != nil {
		return nil, err
	}
	hi, err := colorful.Hex(to)
	if err != nil {
		return nil, err
	}
	table := make(map[string]string, len(labels))
	for i, label := range labels {
		t := 0.0
		if len(labels) > 1 {
			t = float64(i) / float64(len(labels)-1)
		}
		table[label] = lo.BlendLab(hi, t).Clamped().Hex()
	}
	return table, nil
}

// resolvedStyle is a Style with all colors parsed, ready for drawing.
type resolvedStyle struct {
	stroke      color.RGBA
	hasStroke   bool
	fill        color.RGBA
	hasFill     bool
	strokeWidth float64
	fillBy      string
	table       map[string]color.RGBA
}

func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
