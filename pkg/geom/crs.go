package geom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// SRID is a Spatial Reference Identifier. Coordinates are bare floats; the
// SRID ties them to a coordinate system so collections can be compared and
// combined. The zero value means an unknown system.
type SRID int32

const (
	// SRIDUnknown is the default when no reference system is declared.
	SRIDUnknown SRID = 0

	// SRIDWGS84 (EPSG:4326) is geographic longitude/latitude in degrees.
	SRIDWGS84 SRID = 4326

	// SRIDWebMercator (EPSG:3857) is the spherical Mercator projection used
	// by web map tiles, in meters.
	SRIDWebMercator SRID = 3857
)

// String returns a human-readable name for the SRID.
func (s SRID) String() string {
	switch s {
	case SRIDWGS84:
		return "WGS 84 (EPSG:4326)"
	case SRIDWebMercator:
		return "Web Mercator (EPSG:3857)"
	case SRIDUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("EPSG:%d", int32(s))
	}
}

// Project reprojects a geometry between WGS 84 and Web Mercator, returning a
// new geometry of the same kind. Any third ordinate is carried through
// unchanged. Other SRID pairs fail with ErrUnsupportedProjection.
func Project(g Geometry, from, to SRID) (Geometry, error) {
	if from == to {
		return g, nil
	}
	var fn func(orb.Point) orb.Point
	switch {
	case from == SRIDWGS84 && to == SRIDWebMercator:
		fn = project.WGS84.ToMercator
	case from == SRIDWebMercator && to == SRIDWGS84:
		fn = project.Mercator.ToWGS84
	default:
		return Geometry{}, &ErrUnsupportedProjection{From: from, To: to}
	}

	out := Geometry{kind: g.kind, parts: make([][][]float64, len(g.parts))}
	if g.ringCounts != nil {
		out.ringCounts = make([]int, len(g.ringCounts))
		copy(out.ringCounts, g.ringCounts)
	}
	for i, part := range g.parts {
		proj := make([][]float64, len(part))
		for j, coord := range part {
			p := fn(orb.Point{coord[0], coord[1]})
			c := make([]float64, len(coord))
			c[0], c[1] = p[0], p[1]
			if len(coord) > 2 {
				c[2] = coord[2]
			}
			proj[j] = c
		}
		out.parts[i] = proj
	}
	return out, nil
}
