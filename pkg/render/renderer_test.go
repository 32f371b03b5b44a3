package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/geom"
	"github.com/beetlebugorg/carto/pkg/raster"
)

func regionTable(t *testing.T) *feature.Table {
	t.Helper()

	west, err := geom.NewPolygon([][][]float64{{
		{0, 0}, {5, 0}, {5, 10}, {0, 10}, {0, 0},
	}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	east, err := geom.NewPolygon([][][]float64{{
		{5, 0}, {10, 0}, {10, 10}, {5, 10}, {5, 0},
	}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	schema := feature.Schema{
		{Name: "name", Type: feature.ColumnText},
		{Name: "zone", Type: feature.ColumnText},
	}
	rows := []feature.Row{
		{"name": "west", "zone": "wet"},
		{"name": "east", "zone": "dry"},
	}
	table, err := feature.NewTable(schema, rows, feature.NewCollection(geom.SRIDWGS84, west, east))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return table
}

func catGrid(t *testing.T) *raster.CatGrid {
	t.Helper()
	g, err := raster.NewGrid(2, 2,
		raster.Affine{OriginX: 0, OriginY: 10, CellWidth: 5, CellHeight: -5},
		geom.SRIDWGS84, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cat, err := g.Reclassify([]float64{0, 2, 4}, []string{"low", "high"}, raster.DefaultReclassifyOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return cat
}

// TestStateMachine tests the Empty -> Composing -> Finalized transitions
func TestStateMachine(t *testing.T) {
	r := NewRenderer()
	if r.State() != StateEmpty {
		t.Fatalf("Expected Empty, got %v", r.State())
	}

	var noLayers *ErrNoLayers
	if err := r.Finalize(); !errors.As(err, &noLayers) {
		t.Fatalf("Expected ErrNoLayers, got %v", err)
	}

	if err := r.AddLayer(NewVectorLayer(regionTable(t), Style{Stroke: "#000000"})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if r.State() != StateComposing {
		t.Fatalf("Expected Composing, got %v", r.State())
	}

	if err := r.AddLayer(NewVectorLayer(regionTable(t), Style{Stroke: "#ff0000"})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := r.Finalize(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if r.State() != StateFinalized {
		t.Fatalf("Expected Finalized, got %v", r.State())
	}

	// Idempotent once finalized
	if err := r.Finalize(); err != nil {
		t.Errorf("Expected idempotent Finalize, got %v", err)
	}

	var finalized *ErrFinalized
	err := r.AddLayer(NewVectorLayer(regionTable(t), Style{}))
	if !errors.As(err, &finalized) {
		t.Errorf("Expected ErrFinalized, got %v", err)
	}
}

// TestUnmappedCategory verifies that a missing color table entry fails at
// Finalize, before any drawing.
func TestUnmappedCategory(t *testing.T) {
	r := NewRenderer()
	style := Style{
		FillBy:     "zone",
		ColorTable: map[string]string{"wet": "#1f77b4"}, // "dry" missing
	}
	if err := r.AddLayer(NewVectorLayer(regionTable(t), style)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err := r.Finalize()
	var unmapped *ErrUnmappedCategory
	if !errors.As(err, &unmapped) {
		t.Fatalf("Expected ErrUnmappedCategory, got %v", err)
	}
	if unmapped.Value != "dry" {
		t.Errorf("Expected unmapped value dry, got %q", unmapped.Value)
	}
	if r.State() == StateFinalized {
		t.Error("Expected renderer to stay unfinalized after validation failure")
	}

	// Draw surfaces the same error without producing output
	if _, err := r.Draw(100, 100); err == nil {
		t.Error("Expected Draw to fail on unmapped category")
	}
}

// TestUnmappedRasterCategory tests color table validation for raster layers
func TestUnmappedRasterCategory(t *testing.T) {
	r := NewRenderer()
	style := Style{ColorTable: map[string]string{"low": "#00ff00"}} // "high" missing
	if err := r.AddLayer(NewRasterLayer(catGrid(t), style)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var unmapped *ErrUnmappedCategory
	if err := r.Finalize(); !errors.As(err, &unmapped) {
		t.Fatalf("Expected ErrUnmappedCategory, got %v", err)
	}

	bare := NewRenderer()
	if err := bare.AddLayer(NewRasterLayer(catGrid(t), Style{})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var bad *ErrInvalidStyle
	if err := bare.Finalize(); !errors.As(err, &bad) {
		t.Errorf("Expected ErrInvalidStyle for missing color table, got %v", err)
	}
}

// TestStyleValidation tests color parsing and fill-by column checks
func TestStyleValidation(t *testing.T) {
	tests := []struct {
		name  string
		style Style
	}{
		{"bad stroke color", Style{Stroke: "not-a-color"}},
		{"bad fill color", Style{Fill: "#zzzzzz"}},
		{"negative stroke width", Style{Stroke: "#000000", StrokeWidth: -2}},
		{"missing fill-by column", Style{FillBy: "nope", ColorTable: map[string]string{}}},
	}

	table := regionTable(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			if err := r.AddLayer(NewVectorLayer(table, tt.style)); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			var bad *ErrInvalidStyle
			if err := r.Finalize(); !errors.As(err, &bad) {
				t.Errorf("Expected ErrInvalidStyle, got %v", err)
			}
		})
	}
}

// TestDrawChoropleth draws a two-region fill-by map and samples pixels
func TestDrawChoropleth(t *testing.T) {
	r := NewRendererWithOptions(RenderOptions{Background: "#ffffff", Padding: 0})
	style := Style{
		FillBy: "zone",
		ColorTable: map[string]string{
			"wet": "#0000ff",
			"dry": "#ff0000",
		},
	}
	if err := r.AddLayer(NewVectorLayer(regionTable(t), style)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := r.Draw(100, 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("Unexpected image bounds: %v", img.Bounds())
	}

	// World [0,10]x[0,10] fills the canvas: west half blue, east half red
	at := func(x, y int) color.RGBA {
		r, g, b, a := img.At(x, y).RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	if c := at(25, 50); c.B < 200 || c.R > 50 {
		t.Errorf("Expected blue west half, got %+v", c)
	}
	if c := at(75, 50); c.R < 200 || c.B > 50 {
		t.Errorf("Expected red east half, got %+v", c)
	}
}

// TestDrawLayerOrder verifies later layers draw over earlier ones
func TestDrawLayerOrder(t *testing.T) {
	base, err := geom.NewPolygon([][][]float64{{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	top := base

	mk := func(g geom.Geometry) *feature.Table {
		table, err := feature.NewTable(feature.Schema{}, []feature.Row{{}},
			feature.NewCollection(geom.SRIDWGS84, g))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		return table
	}

	r := NewRendererWithOptions(RenderOptions{Padding: 0})
	if err := r.AddLayer(NewVectorLayer(mk(base), Style{Fill: "#00ff00"})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := r.AddLayer(NewVectorLayer(mk(top), Style{Fill: "#ff0000"})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := r.Draw(50, 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	rr, _, bb, _ := img.At(25, 25).RGBA()
	if uint8(rr>>8) < 200 || uint8(bb>>8) > 50 {
		t.Errorf("Expected the later red layer on top, got r=%d b=%d", rr>>8, bb>>8)
	}
}

// TestDrawRasterTransparentNoCategory verifies NoCategory cells leave the
// background untouched.
func TestDrawRasterTransparentNoCategory(t *testing.T) {
	g, err := raster.NewGrid(1, 2,
		raster.Affine{OriginX: 0, OriginY: 1, CellWidth: 5, CellHeight: -1},
		geom.SRIDWGS84, []float64{1, -9999})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	g = g.WithNoData(-9999)
	cat, err := g.Reclassify([]float64{0, 2}, []string{"low"}, raster.DefaultReclassifyOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	r := NewRendererWithOptions(RenderOptions{Background: "#ffffff", Padding: 0})
	if err := r.AddLayer(NewRasterLayer(cat, Style{ColorTable: map[string]string{"low": "#000000"}})); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, err := r.Draw(100, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Left cell painted black, right NoData cell stays background white
	lr, _, _, _ := img.At(25, 5).RGBA()
	if uint8(lr>>8) > 50 {
		t.Errorf("Expected black left cell, got r=%d", lr>>8)
	}
	rr, rg, rb, _ := img.At(75, 5).RGBA()
	if uint8(rr>>8) < 200 || uint8(rg>>8) < 200 || uint8(rb>>8) < 200 {
		t.Errorf("Expected untouched white background over NoData cell, got (%d,%d,%d)", rr>>8, rg>>8, rb>>8)
	}
}

// TestRampTable tests ramp generation endpoints
func TestRampTable(t *testing.T) {
	table, err := RampTable([]string{"a", "b", "c"}, "#000000", "#ffffff")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if table["a"] != "#000000" {
		t.Errorf("Expected first label to take the from color, got %q", table["a"])
	}
	if table["c"] != "#ffffff" {
		t.Errorf("Expected last label to take the to color, got %q", table["c"])
	}
	if len(table) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(table))
	}

	if _, err := RampTable([]string{"a"}, "bad", "#ffffff"); err == nil {
		t.Error("Expected error for bad hex input")
	}
}
