// Package feature implements the tabular side of the simple-features model:
// geometry collections sharing one coordinate reference system, and feature
// tables pairing each row of typed attributes with exactly one geometry.
package feature

import (
	"github.com/beetlebugorg/carto/pkg/geom"
)

// Collection is an ordered sequence of geometries sharing one SRID.
//
// Collections are immutable: Append, Subset and Reproject return new values.
// A spatial index is built at construction for WithinBounds queries.
type Collection struct {
	geoms []geom.Geometry
	srid  geom.SRID
	index *spatialIndex
}

// NewCollection constructs a collection from geometries that all share the
// given SRID.
func NewCollection(srid geom.SRID, geoms ...geom.Geometry) *Collection {
	c := &Collection{
		geoms: append([]geom.Geometry(nil), geoms...),
		srid:  srid,
	}
	c.index = buildSpatialIndex(c.geoms)
	return c
}

// SRID returns the coordinate reference system identifier shared by all
// geometries in the collection.
func (c *Collection) SRID() geom.SRID {
	return c.srid
}

// Len returns the number of geometries.
func (c *Collection) Len() int {
	return len(c.geoms)
}

// At returns the geometry at index i.
func (c *Collection) At(i int) geom.Geometry {
	return c.geoms[i]
}

// Bounds returns the union of all geometry bounds.
func (c *Collection) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, g := range c.geoms {
		b = b.Union(g.Bounds())
	}
	return b
}

// Append returns a new collection holding both inputs' geometries in order.
// The SRIDs must match; reproject explicitly first when they do not.
func (c *Collection) Append(other *Collection) (*Collection, error) {
	if c.srid != other.srid {
		return nil, &ErrCRSMismatch{Left: c.srid, Right: other.srid}
	}
	merged := make([]geom.Geometry, 0, len(c.geoms)+len(other.geoms))
	merged = append(merged, c.geoms...)
	merged = append(merged, other.geoms...)
	return NewCollection(c.srid, merged...), nil
}

// Subset returns a new collection containing the geometries at the given
// indices, in the given order.
func (c *Collection) Subset(indices []int) *Collection {
	geoms := make([]geom.Geometry, len(indices))
	for i, idx := range indices {
		geoms[i] = c.geoms[idx]
	}
	return NewCollection(c.srid, geoms...)
}

// Reproject returns a new collection with every geometry projected into the
// target SRID.
func (c *Collection) Reproject(to geom.SRID) (*Collection, error) {
	if to == c.srid {
		return c, nil
	}
	geoms := make([]geom.Geometry, len(c.geoms))
	for i, g := range c.geoms {
		projected, err := geom.Project(g, c.srid, to)
		if err != nil {
			return nil, err
		}
		geoms[i] = projected
	}
	return NewCollection(to, geoms...), nil
}

// WithinBounds returns the indices of geometries whose bounds intersect the
// query box, in ascending order. Backed by the R-tree index; falls back to a
// linear scan when no index exists.
func (c *Collection) WithinBounds(b geom.Bounds) []int {
	if c.index != nil {
		return c.index.search(b)
	}
	result := make([]int, 0)
	for i, g := range c.geoms {
		if b.Intersects(g.Bounds()) {
			result = append(result, i)
		}
	}
	return result
}
