package raster

import (
	"github.com/beetlebugorg/carto/pkg/classify"
	"github.com/beetlebugorg/carto/pkg/geom"
)

// NoCategory marks a cell a reclassification could not bin: NoData in the
// input, or outside the breakpoint range. It propagates in place, never
// silently replaced by a bin.
const NoCategory = classify.NoCategory

// CatGrid is a categorical raster: the result of reclassifying a numeric
// grid. It has the same shape and transform as its source.
type CatGrid struct {
	nrows  int
	ncols  int
	affine Affine
	srid   geom.SRID
	cats   []string
	labels []string
}

// ReclassifyOptions configures bin edges; see classify.Options.
type ReclassifyOptions struct {
	IncludeLowest bool
}

// DefaultReclassifyOptions returns the default bin-edge behavior:
// right-closed intervals with the lowest break included.
func DefaultReclassifyOptions() ReclassifyOptions {
	return ReclassifyOptions{IncludeLowest: true}
}

// Reclassify maps the grid's band-0 values element-wise into the labeled
// bins defined by breaks (n+1 strictly increasing values, n labels). The
// output has the same shape; NoData cells become NoCategory rather than
// being binned. Invalid breaks or labels fail with a breakpoint error.
func (g *Grid) Reclassify(breaks []float64, labels []string, opts ReclassifyOptions) (*CatGrid, error) {
	copts := classify.Options{
		IncludeLowest: opts.IncludeLowest,
		Sentinel:      g.nodata,
		HasSentinel:   g.hasNodata,
	}
	values := make([]float64, g.nrows*g.ncols)
	for row := 0; row < g.nrows; row++ {
		for col := 0; col < g.ncols; col++ {
			values[row*g.ncols+col] = g.At(row, col)
		}
	}
	cats, err := classify.Slice(values, breaks, labels, copts)
	if err != nil {
		return nil, err
	}
	return &CatGrid{
		nrows:  g.nrows,
		ncols:  g.ncols,
		affine: g.affine,
		srid:   g.srid,
		cats:   cats,
		labels: append([]string(nil), labels...),
	}, nil
}

// Dims returns (nrows, ncols).
func (c *CatGrid) Dims() (nrows, ncols int) {
	return c.nrows, c.ncols
}

// Affine returns the index-to-world transform.
func (c *CatGrid) Affine() Affine {
	return c.affine
}

// SRID returns the coordinate reference system identifier.
func (c *CatGrid) SRID() geom.SRID {
	return c.srid
}

// At returns the category of cell (row, col); NoCategory for unbinned cells.
func (c *CatGrid) At(row, col int) string {
	return c.cats[row*c.ncols+col]
}

// Labels returns the ordered bin labels the grid was classified with.
func (c *CatGrid) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Categories returns the distinct categories present in the grid, in bin
// order, excluding NoCategory.
func (c *CatGrid) Categories() []string {
	present := make(map[string]bool)
	for _, cat := range c.cats {
		if cat != NoCategory {
			present[cat] = true
		}
	}
	out := make([]string, 0, len(present))
	for _, label := range c.labels {
		if present[label] {
			out = append(out, label)
		}
	}
	return out
}

// Bounds returns the world-coordinate extent of the grid.
func (c *CatGrid) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	corners := [][2]float64{
		{0, 0},
		{float64(c.ncols), 0},
		{0, float64(c.nrows)},
		{float64(c.ncols), float64(c.nrows)},
	}
	for _, corner := range corners {
		x, y := c.affine.Apply(corner[0], corner[1])
		b = b.Union(geom.Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y})
	}
	return b
}
