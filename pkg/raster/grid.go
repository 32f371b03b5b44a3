package raster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/beetlebugorg/carto/pkg/geom"
)

// Grid is a raster of numeric cell values.
//
// Cells are stored row-major, band-interleaved-by-pixel:
// cells[(row*ncols+col)*nbands + band]. A grid is immutable after
// construction; Crop and Reclassify return new values and rendering never
// resizes one.
type Grid struct {
	nrows  int
	ncols  int
	nbands int
	affine Affine
	srid   geom.SRID

	cells     []float64
	nodata    float64
	hasNodata bool
}

// NewGrid constructs a single-band grid from row-major cell values.
func NewGrid(nrows, ncols int, affine Affine, srid geom.SRID, cells []float64) (*Grid, error) {
	return NewBandedGrid(nrows, ncols, 1, affine, srid, cells)
}

// NewBandedGrid constructs a grid with nbands values per cell.
func NewBandedGrid(nrows, ncols, nbands int, affine Affine, srid geom.SRID, cells []float64) (*Grid, error) {
	if nrows <= 0 || ncols <= 0 || nbands <= 0 {
		return nil, &ErrGrid{Reason: fmt.Sprintf("dimensions must be positive, got %dx%dx%d", nrows, ncols, nbands)}
	}
	if affine.CellWidth == 0 || affine.CellHeight == 0 {
		return nil, &ErrGrid{Reason: "cell sizes must be non-zero"}
	}
	if len(cells) != nrows*ncols*nbands {
		return nil, &ErrGrid{
			Reason: fmt.Sprintf("expected %d cell values, got %d", nrows*ncols*nbands, len(cells)),
		}
	}
	stored := make([]float64, len(cells))
	copy(stored, cells)
	return &Grid{
		nrows:  nrows,
		ncols:  ncols,
		nbands: nbands,
		affine: affine,
		srid:   srid,
		cells:  stored,
	}, nil
}

// WithNoData returns a copy of the grid with the given value designated as
// the "no data" sentinel.
func (g *Grid) WithNoData(v float64) *Grid {
	out := *g
	out.nodata = v
	out.hasNodata = true
	return &out
}

// Dims returns (nrows, ncols, nbands).
func (g *Grid) Dims() (nrows, ncols, nbands int) {
	return g.nrows, g.ncols, g.nbands
}

// Affine returns the index-to-world transform.
func (g *Grid) Affine() Affine {
	return g.affine
}

// SRID returns the coordinate reference system identifier.
func (g *Grid) SRID() geom.SRID {
	return g.srid
}

// At returns the band-0 value of cell (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.cells[(row*g.ncols+col)*g.nbands]
}

// AtBand returns the value of cell (row, col) in the given band.
func (g *Grid) AtBand(row, col, band int) float64 {
	return g.cells[(row*g.ncols+col)*g.nbands+band]
}

// NoData returns the sentinel value and whether one is designated.
func (g *Grid) NoData() (float64, bool) {
	return g.nodata, g.hasNodata
}

// IsNoData reports whether v equals the sentinel (or is NaN, which always
// counts as missing).
func (g *Grid) IsNoData(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return g.hasNodata && v == g.nodata
}

// Bounds returns the world-coordinate extent of the grid, covering all four
// corners so rotated and south-up transforms are handled.
func (g *Grid) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	corners := [][2]float64{
		{0, 0},
		{float64(g.ncols), 0},
		{0, float64(g.nrows)},
		{float64(g.ncols), float64(g.nrows)},
	}
	for _, c := range corners {
		x, y := g.affine.Apply(c[0], c[1])
		b = b.Union(geom.Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y})
	}
	return b
}

// Stats summarizes the band-0 values of a grid, excluding NoData cells.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Stats computes min/max/mean over all non-NoData band-0 cells. When every
// cell is NoData the count is zero and the values are NaN.
func (g *Grid) Stats() Stats {
	valid := make([]float64, 0, g.nrows*g.ncols)
	for row := 0; row < g.nrows; row++ {
		for col := 0; col < g.ncols; col++ {
			v := g.At(row, col)
			if g.IsNoData(v) {
				continue
			}
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}
	return Stats{
		Min:   floats.Min(valid),
		Max:   floats.Max(valid),
		Mean:  floats.Sum(valid) / float64(len(valid)),
		Count: len(valid),
	}
}

// Equal reports whether two grids have identical shape, transform, SRID,
// sentinel, and cell values. NaN cells compare equal to NaN.
func (g *Grid) Equal(o *Grid) bool {
	if g.nrows != o.nrows || g.ncols != o.ncols || g.nbands != o.nbands {
		return false
	}
	if g.affine != o.affine || g.srid != o.srid {
		return false
	}
	if g.hasNodata != o.hasNodata || (g.hasNodata && g.nodata != o.nodata) {
		return false
	}
	for i := range g.cells {
		a, b := g.cells[i], o.cells[i]
		if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			return false
		}
	}
	return true
}
