package geom

import (
	"errors"
	"testing"
)

// TestKindString tests the kind enumeration
func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPoint, "Point"},
		{KindMultiPoint, "MultiPoint"},
		{KindLineString, "LineString"},
		{KindMultiLineString, "MultiLineString"},
		{KindPolygon, "Polygon"},
		{KindMultiPolygon, "MultiPolygon"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.kind.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.kind.String())
			}
		})
	}
}

// TestPolygonValidation tests the closed-ring and minimum-vertex rules
func TestPolygonValidation(t *testing.T) {
	tests := []struct {
		name    string
		rings   [][][]float64
		wantErr bool
	}{
		{
			name: "valid closed ring",
			rings: [][][]float64{{
				{-71.05, 42.35}, {-71.04, 42.35}, {-71.04, 42.36}, {-71.05, 42.35},
			}},
			wantErr: false,
		},
		{
			name: "unclosed ring",
			rings: [][][]float64{{
				{-71.05, 42.35}, {-71.04, 42.35}, {-71.04, 42.36}, {-71.05, 42.36},
			}},
			wantErr: true,
		},
		{
			name: "too few vertices",
			rings: [][][]float64{{
				{-71.05, 42.35}, {-71.04, 42.35}, {-71.05, 42.35},
			}},
			wantErr: true,
		},
		{
			name:    "no rings",
			rings:   [][][]float64{},
			wantErr: true,
		},
		{
			name: "inconsistent dimensionality",
			rings: [][][]float64{{
				{-71.05, 42.35}, {-71.04, 42.35, 3.0}, {-71.04, 42.36}, {-71.05, 42.35},
			}},
			wantErr: true,
		},
		{
			name: "valid ring with hole",
			rings: [][][]float64{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.rings)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantErr {
				var invalid *ErrInvalidGeometry
				if !errors.As(err, &invalid) {
					t.Errorf("Expected ErrInvalidGeometry, got %T", err)
				}
			}
		})
	}
}

// TestConstructors tests point and line construction rules
func TestConstructors(t *testing.T) {
	if _, err := NewPoint([]float64{1}); err == nil {
		t.Error("Expected error for 1-ordinate point")
	}
	if _, err := NewPoint([]float64{1, 2, 3, 4}); err == nil {
		t.Error("Expected error for 4-ordinate point")
	}
	if _, err := NewLineString([][]float64{{0, 0}}); err == nil {
		t.Error("Expected error for single-vertex line")
	}
	if _, err := NewLineString([][]float64{{0, 0}, {1, 1, 5}}); err == nil {
		t.Error("Expected error for mixed 2D/3D line")
	}
	if _, err := NewMultiPoint(nil); err == nil {
		t.Error("Expected error for empty multipoint")
	}

	g, err := NewPoint([]float64{-71.05, 42.35})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if g.Kind() != KindPoint {
		t.Errorf("Expected Point, got %v", g.Kind())
	}
	if g.VertexCount() != 1 {
		t.Errorf("Expected 1 vertex, got %d", g.VertexCount())
	}
}

// TestImmutability verifies constructors copy their input
func TestImmutability(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 1}, {2, 0}}
	g, err := NewLineString(coords)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	coords[0][0] = 99

	got := g.Coordinates()
	if got[0][0] != 0 {
		t.Errorf("Expected geometry unaffected by caller mutation, got %v", got[0][0])
	}

	// Accessor results are copies too
	got[1][1] = 99
	if g.Coordinates()[1][1] != 1 {
		t.Error("Expected accessor to return a copy")
	}
}

// TestRecastRoundTrip verifies polygon-to-linestring keeps the exact ring
// vertex sequence, closing vertex included.
func TestRecastRoundTrip(t *testing.T) {
	ring := [][]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	poly, err := NewPolygon([][][]float64{ring})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	line, err := poly.Recast(KindLineString)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if line.Kind() != KindLineString {
		t.Fatalf("Expected LineString, got %v", line.Kind())
	}

	got := line.Coordinates()
	if len(got) != len(ring) {
		t.Fatalf("Expected %d vertices, got %d", len(ring), len(got))
	}
	for i := range ring {
		if got[i][0] != ring[i][0] || got[i][1] != ring[i][1] {
			t.Errorf("Vertex %d: expected %v, got %v", i, ring[i], got[i])
		}
	}

	// And back again
	poly2, err := line.Recast(KindPolygon)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if poly2.Kind() != KindPolygon {
		t.Errorf("Expected Polygon, got %v", poly2.Kind())
	}
}

// TestRecastTable tests supported and unsupported casts
func TestRecastTable(t *testing.T) {
	point, _ := NewPoint([]float64{1, 2})
	line, _ := NewLineString([][]float64{{0, 0}, {1, 1}})
	multi2, _ := NewMultiPoint([][]float64{{0, 0}, {1, 1}})

	tests := []struct {
		name        string
		geom        Geometry
		to          Kind
		wantKind    Kind
		unsupported bool
		invalid     bool
	}{
		{name: "point to multipoint", geom: point, to: KindMultiPoint, wantKind: KindMultiPoint},
		{name: "line to multiline", geom: line, to: KindMultiLineString, wantKind: KindMultiLineString},
		{name: "point to polygon", geom: point, to: KindPolygon, unsupported: true},
		{name: "point to linestring", geom: point, to: KindLineString, unsupported: true},
		{name: "multipoint of two to point", geom: multi2, to: KindPoint, invalid: true},
		{name: "open line to polygon", geom: line, to: KindPolygon, invalid: true},
		{name: "same kind", geom: line, to: KindLineString, wantKind: KindLineString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.geom.Recast(tt.to)
			switch {
			case tt.unsupported:
				var cast *ErrUnsupportedCast
				if !errors.As(err, &cast) {
					t.Errorf("Expected ErrUnsupportedCast, got %v", err)
				}
			case tt.invalid:
				var invalid *ErrInvalidGeometry
				if !errors.As(err, &invalid) {
					t.Errorf("Expected ErrInvalidGeometry, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if got.Kind() != tt.wantKind {
					t.Errorf("Expected %v, got %v", tt.wantKind, got.Kind())
				}
			}
		})
	}
}

// TestBounds tests bounding box computation and queries
func TestBounds(t *testing.T) {
	line, _ := NewLineString([][]float64{{-71.05, 42.35}, {-71.03, 42.37}, {-71.04, 42.30}})
	b := line.Bounds()

	if b.MinX != -71.05 || b.MaxX != -71.03 {
		t.Errorf("Expected X range [-71.05, -71.03], got [%v, %v]", b.MinX, b.MaxX)
	}
	if b.MinY != 42.30 || b.MaxY != 42.37 {
		t.Errorf("Expected Y range [42.30, 42.37], got [%v, %v]", b.MinY, b.MaxY)
	}

	other := Bounds{MinX: -71.045, MinY: 42.34, MaxX: -71.0, MaxY: 42.36}
	if !b.Intersects(other) {
		t.Error("Expected bounds to intersect")
	}
	far := Bounds{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}
	if b.Intersects(far) {
		t.Error("Expected disjoint bounds")
	}
	if !EmptyBounds().IsEmpty() {
		t.Error("Expected EmptyBounds to be empty")
	}
	if EmptyBounds().Union(b) != b {
		t.Error("Expected union with empty to be identity")
	}
}

// TestContainsPoint tests even-odd point-in-polygon with holes
func TestContainsPoint(t *testing.T) {
	poly, err := NewPolygon([][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}, // hole
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 2, 2, true},
		{"inside near edge", 9.5, 9.5, true},
		{"in hole", 5, 5, false},
		{"outside", 11, 5, false},
		{"outside negative", -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := poly.ContainsPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("ContainsPoint(%v, %v): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}

	line, _ := NewLineString([][]float64{{0, 0}, {10, 10}})
	if line.ContainsPoint(5, 5) {
		t.Error("Expected ContainsPoint to be false for non-areal kinds")
	}
}

// TestProject tests WGS84/WebMercator reprojection round-trips
func TestProject(t *testing.T) {
	point, _ := NewPoint([]float64{-71.05, 42.35})

	merc, err := Project(point, SRIDWGS84, SRIDWebMercator)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	mc := merc.Coordinates()[0]
	if mc[0] >= 0 || mc[1] <= 0 {
		t.Errorf("Expected negative easting and positive northing, got %v", mc)
	}

	back, err := Project(merc, SRIDWebMercator, SRIDWGS84)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	bc := back.Coordinates()[0]
	const eps = 1e-6
	if bc[0] < -71.05-eps || bc[0] > -71.05+eps || bc[1] < 42.35-eps || bc[1] > 42.35+eps {
		t.Errorf("Expected round-trip to return to (-71.05, 42.35), got %v", bc)
	}

	if _, err := Project(point, SRIDWGS84, SRID(2154)); err == nil {
		t.Error("Expected ErrUnsupportedProjection for unsupported pair")
	}

	same, err := Project(point, SRIDWGS84, SRIDWGS84)
	if err != nil || same.Coordinates()[0][0] != -71.05 {
		t.Errorf("Expected identity projection, got %v (%v)", same, err)
	}
}
