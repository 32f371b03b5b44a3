// Package geom implements the simple-features geometry model used throughout
// carto: points, lines, polygons and their multi-variants, expressed as
// ordered coordinate sequences.
//
// Geometries are immutable once constructed. All transforming operations
// (Recast, Project) return new values.
//
// Coordinates follow the GeoJSON convention: [x, y] is [longitude, latitude]
// for geographic data. A third ordinate (elevation, depth) is preserved but
// never interpreted.
package geom

import "fmt"

// Kind identifies the shape of a geometry.
type Kind int

const (
	// KindPoint is a single location.
	KindPoint Kind = iota

	// KindMultiPoint is an ordered set of locations.
	KindMultiPoint

	// KindLineString is a connected path of two or more vertices.
	KindLineString

	// KindMultiLineString is an ordered set of paths.
	KindMultiLineString

	// KindPolygon is one or more closed linear rings. The first ring is the
	// exterior boundary; subsequent rings are holes.
	KindPolygon

	// KindMultiPolygon is an ordered set of polygons.
	KindMultiPolygon
)

// String returns the string representation of the geometry kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindMultiLineString:
		return "MultiLineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is a single spatial shape.
//
// The zero value is an empty Point. Construct geometries with NewPoint,
// NewLineString, NewPolygon and friends; the constructors validate their
// input and copy it, so a Geometry never aliases caller-owned slices.
type Geometry struct {
	kind Kind

	// parts holds the vertex runs of the geometry:
	//   Point, MultiPoint, LineString: one part
	//   MultiLineString: one part per path
	//   Polygon: one part per ring (exterior first)
	//   MultiPolygon: rings of all polygons, flattened in order
	parts [][][]float64

	// ringCounts records, for MultiPolygon only, how many rings of parts
	// belong to each polygon.
	ringCounts []int
}

// NewPoint constructs a Point from a single coordinate pair (or triple).
func NewPoint(coord []float64) (Geometry, error) {
	if len(coord) < 2 || len(coord) > 3 {
		return Geometry{}, &ErrInvalidGeometry{
			Kind:   KindPoint,
			Reason: "coordinate must have 2 or 3 ordinates",
		}
	}
	parts := [][][]float64{{copyCoord(coord)}}
	return Geometry{kind: KindPoint, parts: parts}, nil
}

// NewMultiPoint constructs a MultiPoint from one or more coordinate pairs.
func NewMultiPoint(coords [][]float64) (Geometry, error) {
	if len(coords) == 0 {
		return Geometry{}, &ErrInvalidGeometry{
			Kind:   KindMultiPoint,
			Reason: "requires at least one coordinate",
		}
	}
	part, err := copyVertices(KindMultiPoint, coords)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{kind: KindMultiPoint, parts: [][][]float64{part}}, nil
}

// NewLineString constructs a LineString from two or more vertices.
func NewLineString(coords [][]float64) (Geometry, error) {
	if len(coords) < 2 {
		return Geometry{}, &ErrInvalidGeometry{
			Kind:   KindLineString,
			Reason: "requires at least two vertices",
		}
	}
	part, err := copyVertices(KindLineString, coords)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{kind: KindLineString, parts: [][][]float64{part}}, nil
}

// NewMultiLineString constructs a MultiLineString from one or more paths.
func NewMultiLineString(lines [][][]float64) (Geometry, error) {
	if len(lines) == 0 {
		return Geometry{}, &ErrInvalidGeometry{
			Kind:   KindMultiLineString,
			Reason: "requires at least one path",
		}
	}
	parts := make([][][]float64, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			return Geometry{}, &ErrInvalidGeometry{
				Kind:   KindMultiLineString,
				Reason: "each path requires at least two vertices",
			}
		}
		part, err := copyVertices(KindMultiLineString, line)
		if err != nil {
			return Geometry{}, err
		}
		parts = append(parts, part)
	}
	if err := checkDimensions(KindMultiLineString, parts); err != nil {
		return Geometry{}, err
	}
	return Geometry{kind: KindMultiLineString, parts: parts}, nil
}

// NewPolygon constructs a Polygon from one or more closed linear rings.
// The first ring is the exterior boundary, subsequent rings are holes.
//
// Every ring must be closed (first and last vertices identical) and contain
// at least 4 vertices, the triangle minimum once closure is counted.
func NewPolygon(rings [][][]float64) (Geometry, error) {
	parts, err := copyRings(rings)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{kind: KindPolygon, parts: parts}, nil
}

// NewMultiPolygon constructs a MultiPolygon from one or more polygons, each
// given as its list of closed rings.
func NewMultiPolygon(polys [][][][]float64) (Geometry, error) {
	if len(polys) == 0 {
		return Geometry{}, &ErrInvalidGeometry{
			Kind:   KindMultiPolygon,
			Reason: "requires at least one polygon",
		}
	}
	var parts [][][]float64
	counts := make([]int, 0, len(polys))
	for _, rings := range polys {
		ringParts, err := copyRings(rings)
		if err != nil {
			return Geometry{}, err
		}
		parts = append(parts, ringParts...)
		counts = append(counts, len(ringParts))
	}
	if err := checkDimensions(KindMultiPolygon, parts); err != nil {
		return Geometry{}, err
	}
	return Geometry{kind: KindMultiPolygon, parts: parts, ringCounts: counts}, nil
}

// Kind returns the geometry kind.
func (g Geometry) Kind() Kind {
	return g.kind
}

// IsEmpty reports whether the geometry has no vertices.
func (g Geometry) IsEmpty() bool {
	for _, part := range g.parts {
		if len(part) > 0 {
			return false
		}
	}
	return true
}

// Coordinates returns the vertices of the first part of the geometry.
//
// For Point this is a single pair, for MultiPoint and LineString the full
// vertex sequence, for Polygon the exterior ring. The returned slice is a
// copy and may be modified freely.
func (g Geometry) Coordinates() [][]float64 {
	if len(g.parts) == 0 {
		return nil
	}
	return copyPart(g.parts[0])
}

// Parts returns all vertex runs of the geometry: rings for a Polygon, paths
// for a MultiLineString, a single run otherwise. The result is a copy.
func (g Geometry) Parts() [][][]float64 {
	out := make([][][]float64, len(g.parts))
	for i, part := range g.parts {
		out[i] = copyPart(part)
	}
	return out
}

// Polygons returns the geometry regrouped as polygons (each a list of rings).
//
// For a Polygon the result has one element. For a MultiPolygon, one element
// per member polygon. For all other kinds the result is nil.
func (g Geometry) Polygons() [][][][]float64 {
	switch g.kind {
	case KindPolygon:
		return [][][][]float64{g.Parts()}
	case KindMultiPolygon:
		out := make([][][][]float64, 0, len(g.ringCounts))
		i := 0
		for _, n := range g.ringCounts {
			poly := make([][][]float64, 0, n)
			for j := 0; j < n; j++ {
				poly = append(poly, copyPart(g.parts[i+j]))
			}
			out = append(out, poly)
			i += n
		}
		return out
	default:
		return nil
	}
}

// VertexCount returns the total number of vertices across all parts.
func (g Geometry) VertexCount() int {
	n := 0
	for _, part := range g.parts {
		n += len(part)
	}
	return n
}

func copyCoord(coord []float64) []float64 {
	out := make([]float64, len(coord))
	copy(out, coord)
	return out
}

func copyPart(part [][]float64) [][]float64 {
	out := make([][]float64, len(part))
	for i, c := range part {
		out[i] = copyCoord(c)
	}
	return out
}

// copyVertices validates and copies a vertex run. Every vertex must have 2 or
// 3 ordinates, and all vertices must agree on dimensionality.
func copyVertices(kind Kind, coords [][]float64) ([][]float64, error) {
	dim := 0
	out := make([][]float64, 0, len(coords))
	for i, coord := range coords {
		if len(coord) < 2 || len(coord) > 3 {
			return nil, &ErrInvalidGeometry{
				Kind:   kind,
				Reason: fmt.Sprintf("vertex %d must have 2 or 3 ordinates", i),
			}
		}
		if dim == 0 {
			dim = len(coord)
		} else if len(coord) != dim {
			return nil, &ErrInvalidGeometry{
				Kind:   kind,
				Reason: fmt.Sprintf("inconsistent coordinate dimensionality at vertex %d", i),
			}
		}
		out = append(out, copyCoord(coord))
	}
	return out, nil
}

// copyRings validates and copies polygon rings: closure and the 4-vertex
// minimum per ring, plus dimensional consistency across rings.
func copyRings(rings [][][]float64) ([][][]float64, error) {
	if len(rings) == 0 {
		return nil, &ErrInvalidGeometry{
			Kind:   KindPolygon,
			Reason: "requires at least one ring",
		}
	}
	parts := make([][][]float64, 0, len(rings))
	for i, ring := range rings {
		if len(ring) < 4 {
			return nil, &ErrInvalidGeometry{
				Kind:   KindPolygon,
				Reason: fmt.Sprintf("ring %d has fewer than 4 vertices", i),
			}
		}
		part, err := copyVertices(KindPolygon, ring)
		if err != nil {
			return nil, err
		}
		first, last := part[0], part[len(part)-1]
		if first[0] != last[0] || first[1] != last[1] {
			return nil, &ErrInvalidGeometry{
				Kind:   KindPolygon,
				Reason: fmt.Sprintf("ring %d is not closed", i),
			}
		}
		parts = append(parts, part)
	}
	if err := checkDimensions(KindPolygon, parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// checkDimensions verifies that all parts share one coordinate dimensionality.
func checkDimensions(kind Kind, parts [][][]float64) error {
	dim := 0
	for _, part := range parts {
		for _, coord := range part {
			if dim == 0 {
				dim = len(coord)
			} else if len(coord) != dim {
				return &ErrInvalidGeometry{
					Kind:   kind,
					Reason: "inconsistent coordinate dimensionality across parts",
				}
			}
		}
	}
	return nil
}

