package geom

import (
	"math"
)

// Bounds is an axis-aligned bounding box in world coordinates.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBounds returns an inverted box that unions correctly with any other.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the box contains no area and no point.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Intersects reports whether two boxes share any point.
func (b Bounds) Intersects(o Bounds) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Contains reports whether the point (x, y) lies inside or on the box.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Union returns the smallest box covering both inputs.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Width returns the horizontal extent of the box, or 0 when empty.
func (b Bounds) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box, or 0 when empty.
func (b Bounds) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Bounds returns the minimum bounding box of the geometry.
func (g Geometry) Bounds() Bounds {
	b := EmptyBounds()
	for _, part := range g.parts {
		for _, coord := range part {
			if coord[0] < b.MinX {
				b.MinX = coord[0]
			}
			if coord[0] > b.MaxX {
				b.MaxX = coord[0]
			}
			if coord[1] < b.MinY {
				b.MinY = coord[1]
			}
			if coord[1] > b.MaxY {
				b.MaxY = coord[1]
			}
		}
	}
	return b
}

// ContainsPoint reports whether (x, y) lies inside a Polygon or MultiPolygon
// using even-odd ray casting. Holes are honored: a point inside a hole ring
// is outside the polygon. Returns false for all other kinds.
func (g Geometry) ContainsPoint(x, y float64) bool {
	if g.kind != KindPolygon && g.kind != KindMultiPolygon {
		return false
	}
	inside := false
	for _, ring := range g.parts {
		if rayCrossings(ring, x, y)%2 == 1 {
			inside = !inside
		}
	}
	return inside
}

// rayCrossings counts crossings of a rightward ray from (x, y) with the ring
// edges, using the half-open rule so shared vertices are not double counted.
func rayCrossings(ring [][]float64, x, y float64) int {
	n := 0
	for i := 0; i+1 < len(ring); i++ {
		x0, y0 := ring[i][0], ring[i][1]
		x1, y1 := ring[i+1][0], ring[i+1][1]
		if (y0 > y) == (y1 > y) {
			continue
		}
		t := (y - y0) / (y1 - y0)
		if x0+t*(x1-x0) > x {
			n++
		}
	}
	return n
}
