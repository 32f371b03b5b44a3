package geom

// Recast converts a geometry to a structurally compatible kind, returning a
// new geometry. The supported casts are:
//
//	Point          ↔ MultiPoint      (wrap / unwrap a single location)
//	LineString     ↔ MultiLineString (wrap / unwrap a single path)
//	Polygon        → LineString      (single-ring: ring vertices as a path)
//	Polygon        → MultiLineString (one path per ring)
//	LineString     → Polygon         (path must be a closed ring)
//	MultiLineString → Polygon        (every path must be a closed ring)
//
// A cast keeps vertex sequences exactly: casting a Polygon to a LineString
// yields a path equal to the ring, closing vertex included. Casting between
// incompatible kinds fails with ErrUnsupportedCast. A structurally supported
// cast can still fail with ErrInvalidGeometry when the value does not satisfy
// the target kind, e.g. unwrapping a MultiPoint with more than one location.
func (g Geometry) Recast(to Kind) (Geometry, error) {
	if to == g.kind {
		return g, nil
	}
	switch {
	case g.kind == KindPoint && to == KindMultiPoint:
		return NewMultiPoint(g.Coordinates())

	case g.kind == KindMultiPoint && to == KindPoint:
		coords := g.Coordinates()
		if len(coords) != 1 {
			return Geometry{}, &ErrInvalidGeometry{
				Kind:   KindPoint,
				Reason: "cannot unwrap a MultiPoint with more than one location",
			}
		}
		return NewPoint(coords[0])

	case g.kind == KindLineString && to == KindMultiLineString:
		return NewMultiLineString(g.Parts())

	case g.kind == KindMultiLineString && to == KindLineString:
		parts := g.Parts()
		if len(parts) != 1 {
			return Geometry{}, &ErrInvalidGeometry{
				Kind:   KindLineString,
				Reason: "cannot unwrap a MultiLineString with more than one path",
			}
		}
		return NewLineString(parts[0])

	case g.kind == KindPolygon && to == KindLineString:
		parts := g.Parts()
		if len(parts) != 1 {
			return Geometry{}, &ErrInvalidGeometry{
				Kind:   KindLineString,
				Reason: "polygon with holes casts to MultiLineString, not LineString",
			}
		}
		return NewLineString(parts[0])

	case g.kind == KindPolygon && to == KindMultiLineString:
		return NewMultiLineString(g.Parts())

	case g.kind == KindLineString && to == KindPolygon:
		return NewPolygon([][][]float64{g.Coordinates()})

	case g.kind == KindMultiLineString && to == KindPolygon:
		return NewPolygon(g.Parts())

	default:
		return Geometry{}, &ErrUnsupportedCast{From: g.kind, To: to}
	}
}
