// Package raster implements the gridded side of the spatial model: a 2-D (or
// banded) array of cell values plus an affine transform mapping cell indices
// to world coordinates.
package raster

// Affine maps fractional cell indices (col, row) to world coordinates.
//
//	x = OriginX + col*CellWidth + row*RotX
//	y = OriginY + col*RotY     + row*CellHeight
//
// The origin is the outer corner of cell (0, 0). For the common north-up
// grid, CellHeight is negative and the origin is the top-left corner.
type Affine struct {
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
	RotX       float64
	RotY       float64
}

// Apply maps a fractional (col, row) index to world coordinates.
func (a Affine) Apply(col, row float64) (x, y float64) {
	x = a.OriginX + col*a.CellWidth + row*a.RotX
	y = a.OriginY + col*a.RotY + row*a.CellHeight
	return x, y
}

// CellCenter returns the world coordinates of the center of cell (row, col).
func (a Affine) CellCenter(row, col int) (x, y float64) {
	return a.Apply(float64(col)+0.5, float64(row)+0.5)
}

// Translate returns the transform shifted so that cell (0, 0) of the new
// grid coincides with cell (row, col) of the old one. Cell sizes and
// rotation terms are unchanged, which keeps index-to-world mapping exact
// after a crop.
func (a Affine) Translate(row, col int) Affine {
	x, y := a.Apply(float64(col), float64(row))
	out := a
	out.OriginX = x
	out.OriginY = y
	return out
}
