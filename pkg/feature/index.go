package feature

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/carto/pkg/geom"
)

// spatialIndex provides O(log n) bounding-box queries over a collection
// using an R-tree, instead of a linear O(n) scan.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedGeometry wraps a geometry index for R-tree storage.
type indexedGeometry struct {
	idx    int
	bounds geom.Bounds
}

// Bounds implements rtreego.Spatial.
func (g *indexedGeometry) Bounds() rtreego.Rect {
	return rtreeRect(g.bounds)
}

// rtreeRect converts a bounding box to an rtreego rect, padding degenerate
// dimensions. The R-tree requires non-zero extents, so point geometries get
// a small epsilon box.
func rtreeRect(b geom.Bounds) rtreego.Rect {
	const epsilon = 1e-9

	point := rtreego.Point{b.MinX, b.MinY}
	xLength := b.MaxX - b.MinX
	yLength := b.MaxY - b.MinY
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLength, yLength})
	return rect
}

// buildSpatialIndex indexes all non-empty geometries. Returns nil for an
// empty input, which callers treat as "use linear scan".
func buildSpatialIndex(geoms []geom.Geometry) *spatialIndex {
	if len(geoms) == 0 {
		return nil
	}

	rtree := rtreego.NewTree(2, 25, 50)
	for i, g := range geoms {
		if g.IsEmpty() {
			continue
		}
		rtree.Insert(&indexedGeometry{idx: i, bounds: g.Bounds()})
	}
	return &spatialIndex{rtree: rtree}
}

// search returns the indices of geometries intersecting the query box, in
// ascending order.
func (s *spatialIndex) search(b geom.Bounds) []int {
	if b.IsEmpty() {
		return nil
	}
	spatials := s.rtree.SearchIntersect(rtreeRect(b))

	result := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*indexedGeometry).idx)
	}
	sort.Ints(result)
	return result
}
