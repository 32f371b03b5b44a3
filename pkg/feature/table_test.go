package feature

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/carto/pkg/classify"
	"github.com/beetlebugorg/carto/pkg/geom"
)

func testSchema() Schema {
	return Schema{
		{Name: "name", Type: ColumnText},
		{Name: "pop", Type: ColumnNumeric},
	}
}

func testTable(t *testing.T) *Table {
	t.Helper()

	coords := [][]float64{{-71.05, 42.35}, {-70.9, 42.5}, {-71.2, 42.1}, {-70.5, 42.8}}
	geoms := make([]geom.Geometry, len(coords))
	for i, c := range coords {
		g, err := geom.NewPoint(c)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		geoms[i] = g
	}

	rows := []Row{
		{"name": "alpha", "pop": 120.0},
		{"name": "bravo", "pop": 45.0},
		{"name": "charlie", "pop": 300.0},
		{"name": "delta", "pop": 7.0},
	}

	table, err := NewTable(testSchema(), rows, NewCollection(geom.SRIDWGS84, geoms...))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return table
}

// TestNewTableValidation tests schema and row-count validation
func TestNewTableValidation(t *testing.T) {
	point, _ := geom.NewPoint([]float64{0, 0})
	one := NewCollection(geom.SRIDWGS84, point)

	tests := []struct {
		name   string
		schema Schema
		rows   []Row
		geoms  *Collection
	}{
		{
			name:   "row count mismatch",
			schema: testSchema(),
			rows:   []Row{{"name": "a", "pop": 1.0}, {"name": "b", "pop": 2.0}},
			geoms:  one,
		},
		{
			name:   "wrong value type",
			schema: testSchema(),
			rows:   []Row{{"name": "a", "pop": "not a number"}},
			geoms:  one,
		},
		{
			name:   "undeclared column",
			schema: testSchema(),
			rows:   []Row{{"name": "a", "pop": 1.0, "extra": 2.0}},
			geoms:  one,
		},
		{
			name:   "duplicate schema column",
			schema: Schema{{Name: "x", Type: ColumnText}, {Name: "x", Type: ColumnNumeric}},
			rows:   []Row{{"x": "a"}},
			geoms:  one,
		},
		{
			name:   "nil collection",
			schema: testSchema(),
			rows:   nil,
			geoms:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.schema, tt.rows, tt.geoms); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	// Integers widen into numeric columns
	table, err := NewTable(testSchema(), []Row{{"name": "a", "pop": 42}}, one)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n, ok := table.Numeric(0, "pop"); !ok || n != 42 {
		t.Errorf("Expected widened 42, got %v (%v)", n, ok)
	}
}

// TestFilterPreservesOrder tests row filtering with lockstep geometry subset
func TestFilterPreservesOrder(t *testing.T) {
	table := testTable(t)

	big := table.Filter(func(r Row) bool {
		return r["pop"].(float64) > 50
	})

	if big.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", big.Len())
	}
	names := []string{"alpha", "charlie"}
	for i, want := range names {
		v, _ := big.Value(i, "name")
		if v != want {
			t.Errorf("Row %d: expected %q, got %v", i, want, v)
		}
	}
	if big.Geometries().Len() != 2 {
		t.Errorf("Expected 2 geometries, got %d", big.Geometries().Len())
	}

	// Original table untouched
	if table.Len() != 4 {
		t.Errorf("Expected original table to keep 4 rows, got %d", table.Len())
	}
}

// TestFilterExtractCommute verifies that filtering then extracting geometry
// equals extracting then subsetting by the row-aligned predicate.
func TestFilterExtractCommute(t *testing.T) {
	table := testTable(t)
	pred := func(r Row) bool { return r["pop"].(float64) > 50 }

	left := table.Filter(pred).Geometries()

	keep := make([]int, 0)
	for i := 0; i < table.Len(); i++ {
		if pred(table.Row(i)) {
			keep = append(keep, i)
		}
	}
	right := table.Geometries().Subset(keep)

	if left.Len() != right.Len() {
		t.Fatalf("Expected equal lengths, got %d and %d", left.Len(), right.Len())
	}
	for i := 0; i < left.Len(); i++ {
		lc := left.At(i).Coordinates()
		rc := right.At(i).Coordinates()
		if lc[0][0] != rc[0][0] || lc[0][1] != rc[0][1] {
			t.Errorf("Geometry %d differs: %v vs %v", i, lc, rc)
		}
	}
}

// TestDeriveColumn tests numeric classification into a text column
func TestDeriveColumn(t *testing.T) {
	table := testTable(t)

	derived, err := table.DeriveColumn("pop", "size",
		[]float64{0, 100, 1000}, []string{"small", "large"}, DefaultClassifyOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"large", "small", "large", "small"}
	for i, want := range expected {
		v, ok := derived.Value(i, "size")
		if !ok {
			t.Fatalf("Row %d: expected size column", i)
		}
		if v != want {
			t.Errorf("Row %d: expected %q, got %v", i, want, v)
		}
	}

	// Out-of-range values get the NoCategory marker, never dropped
	narrow, err := table.DeriveColumn("pop", "band",
		[]float64{0, 50}, []string{"tiny"}, DefaultClassifyOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if narrow.Len() != table.Len() {
		t.Fatalf("Expected %d rows, got %d", table.Len(), narrow.Len())
	}
	v, _ := narrow.Value(0, "band") // pop 120, above range
	if v != NoCategory {
		t.Errorf("Expected NoCategory, got %v", v)
	}

	// Source table unchanged
	if _, ok := table.Value(0, "size"); ok {
		t.Error("Expected original table without derived column")
	}
}

// TestDeriveColumnErrors tests error cases of DeriveColumn
func TestDeriveColumnErrors(t *testing.T) {
	table := testTable(t)

	if _, err := table.DeriveColumn("missing", "x", []float64{0, 1}, []string{"a"}, DefaultClassifyOptions()); err == nil {
		t.Error("Expected error for missing source column")
	}
	if _, err := table.DeriveColumn("name", "x", []float64{0, 1}, []string{"a"}, DefaultClassifyOptions()); err == nil {
		t.Error("Expected error for non-numeric source column")
	}
	if _, err := table.DeriveColumn("pop", "name", []float64{0, 1}, []string{"a"}, DefaultClassifyOptions()); err == nil {
		t.Error("Expected error for existing destination column")
	}

	_, err := table.DeriveColumn("pop", "x", []float64{5, 2}, []string{"a"}, DefaultClassifyOptions())
	var bp *classify.ErrBreakpoint
	if !errors.As(err, &bp) {
		t.Errorf("Expected ErrBreakpoint for decreasing breaks, got %v", err)
	}
	_, err = table.DeriveColumn("pop", "x", []float64{5}, nil, DefaultClassifyOptions())
	if !errors.As(err, &bp) {
		t.Errorf("Expected ErrBreakpoint for single break, got %v", err)
	}
}

// TestCategories tests distinct category listing
func TestCategories(t *testing.T) {
	table := testTable(t)
	derived, err := table.DeriveColumn("pop", "size",
		[]float64{0, 100, 1000}, []string{"small", "large"}, DefaultClassifyOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cats, err := derived.Categories("size")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cats) != 2 || cats[0] != "large" || cats[1] != "small" {
		t.Errorf("Expected [large small] in first-seen order, got %v", cats)
	}

	if _, err := derived.Categories("pop"); err == nil {
		t.Error("Expected error for non-text column")
	}
}

// TestRecastGeometries tests table-wide geometry casts
func TestRecastGeometries(t *testing.T) {
	table := testTable(t)

	multi, err := table.RecastGeometries(geom.KindMultiPoint)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < multi.Geometries().Len(); i++ {
		if multi.Geometries().At(i).Kind() != geom.KindMultiPoint {
			t.Errorf("Row %d: expected MultiPoint, got %v", i, multi.Geometries().At(i).Kind())
		}
	}

	if _, err := table.RecastGeometries(geom.KindPolygon); err == nil {
		t.Error("Expected error casting points to polygons")
	}
}
