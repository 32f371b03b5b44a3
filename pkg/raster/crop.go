package raster

import (
	"math"

	"github.com/beetlebugorg/carto/pkg/geom"
)

// Crop restricts the grid to the minimal bounding window of cells whose
// centers fall inside the mask geometry. Cells inside the window but outside
// the mask are set to the NoData sentinel (NaN when none is designated).
// The origin is recomputed so the cropped grid's transform still maps
// indices to true world coordinates.
//
// The mask must be a Polygon or MultiPolygon. A mask that covers no cell
// center fails with ErrEmptyCrop; a mask covering the whole extent returns a
// grid equal to the input.
func (g *Grid) Crop(mask geom.Geometry) (*Grid, error) {
	if k := mask.Kind(); k != geom.KindPolygon && k != geom.KindMultiPolygon {
		return nil, &ErrMask{Kind: k.String()}
	}

	maskBounds := mask.Bounds()
	if !maskBounds.Intersects(g.Bounds()) {
		return nil, &ErrEmptyCrop{}
	}

	inside := make([]bool, g.nrows*g.ncols)
	minRow, minCol := g.nrows, g.ncols
	maxRow, maxCol := -1, -1
	for row := 0; row < g.nrows; row++ {
		for col := 0; col < g.ncols; col++ {
			x, y := g.affine.CellCenter(row, col)
			if !maskBounds.Contains(x, y) {
				continue
			}
			if !mask.ContainsPoint(x, y) {
				continue
			}
			inside[row*g.ncols+col] = true
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	if maxRow < 0 {
		return nil, &ErrEmptyCrop{}
	}

	nrows := maxRow - minRow + 1
	ncols := maxCol - minCol + 1

	// A window cell outside the mask needs a sentinel to be nulled with.
	// Only designate one (NaN) when the input grid has none and nulling
	// actually occurs, so a full-extent crop returns the input unchanged.
	nulled := false
	for row := minRow; row <= maxRow && !nulled; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !inside[row*g.ncols+col] {
				nulled = true
				break
			}
		}
	}
	fill := g.nodata
	hasNodata := g.hasNodata
	if nulled && !hasNodata {
		fill = math.NaN()
		hasNodata = true
	}

	cells := make([]float64, nrows*ncols*g.nbands)
	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			srcRow, srcCol := row+minRow, col+minCol
			for band := 0; band < g.nbands; band++ {
				dst := (row*ncols+col)*g.nbands + band
				if inside[srcRow*g.ncols+srcCol] {
					cells[dst] = g.AtBand(srcRow, srcCol, band)
				} else {
					cells[dst] = fill
				}
			}
		}
	}

	return &Grid{
		nrows:     nrows,
		ncols:     ncols,
		nbands:    g.nbands,
		affine:    g.affine.Translate(minRow, minCol),
		srid:      g.srid,
		cells:     cells,
		nodata:    fill,
		hasNodata: hasNodata,
	}, nil
}
