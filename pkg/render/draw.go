package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/beetlebugorg/carto/pkg/geom"
)

// viewport maps world coordinates to pixel coordinates: the union of layer
// bounds fitted into the canvas preserving aspect ratio, y axis flipped.
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	maxY    float64
	minX    float64
}

func newViewport(b geom.Bounds, width, height, padding int) viewport {
	w := float64(width - 2*padding)
	h := float64(height - 2*padding)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	bw, bh := b.Width(), b.Height()
	scale := 1.0
	if bw > 0 || bh > 0 {
		sx, sy := math.Inf(1), math.Inf(1)
		if bw > 0 {
			sx = w / bw
		}
		if bh > 0 {
			sy = h / bh
		}
		scale = math.Min(sx, sy)
		if math.IsInf(scale, 1) {
			scale = 1
		}
	}

	// Center the fitted extent on the canvas
	offsetX := float64(padding) + (w-bw*scale)/2
	offsetY := float64(padding) + (h-bh*scale)/2
	return viewport{scale: scale, offsetX: offsetX, offsetY: offsetY, maxY: b.MaxY, minX: b.MinX}
}

func (v viewport) pixel(x, y float64) (px, py float64) {
	px = (x-v.minX)*v.scale + v.offsetX
	py = (v.maxY-y)*v.scale + v.offsetY
	return px, py
}

// Draw composites all layers onto a new RGBA image of the given size, in the
// order the layers were added. Finalizes first when needed, so style and
// color-table errors surface before any pixel is produced.
func (r *Renderer) Draw(width, height int) (image.Image, error) {
	if r.state != StateFinalized {
		if err := r.Finalize(); err != nil {
			return nil, err
		}
	}
	if width <= 0 || height <= 0 {
		return nil, &ErrLayer{Reason: "canvas dimensions must be positive"}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if r.opts.Background != "" {
		bg, err := parseColor(r.opts.Background)
		if err != nil {
			return nil, &ErrInvalidStyle{Reason: "background: " + err.Error()}
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	bounds := geom.EmptyBounds()
	for _, layer := range r.layers {
		bounds = bounds.Union(layer.bounds())
	}
	if bounds.IsEmpty() {
		return img, nil
	}
	vp := newViewport(bounds, width, height, r.opts.Padding)

	for i, layer := range r.layers {
		switch layer.kind {
		case VectorLayer:
			r.drawVector(img, vp, layer, r.resolved[i])
		case RasterLayer:
			r.drawRaster(img, vp, layer, r.resolved[i])
		}
	}
	return img, nil
}

func (r *Renderer) drawVector(img *image.RGBA, vp viewport, layer Layer, rs resolvedStyle) {
	geoms := layer.table.Geometries()
	for row := 0; row < layer.table.Len(); row++ {
		fill, drawFill := rs.fill, rs.hasFill
		if rs.fillBy != "" {
			v, _ := layer.table.Value(row, rs.fillBy)
			cat, _ := v.(string)
			if cat == "" {
				// NoCategory or missing: transparent, never a default color
				drawFill = false
			} else {
				fill, drawFill = rs.table[cat], true
			}
		}
		drawGeometry(img, vp, geoms.At(row), fill, drawFill, rs)
	}
}

func drawGeometry(img *image.RGBA, vp viewport, g geom.Geometry, fill color.RGBA, drawFill bool, rs resolvedStyle) {
	switch g.Kind() {
	case geom.KindPoint, geom.KindMultiPoint:
		// Markers take the fill color when one applies, the stroke otherwise
		c := rs.stroke
		if drawFill {
			c = fill
		} else if !rs.hasStroke {
			return
		}
		radius := 1.5 + rs.strokeWidth
		for _, coord := range g.Coordinates() {
			px, py := vp.pixel(coord[0], coord[1])
			fillRings(img, [][][2]float64{squareRing(px, py, radius)}, c)
		}

	case geom.KindLineString, geom.KindMultiLineString:
		if !rs.hasStroke {
			return
		}
		width := rs.strokeWidth
		if width <= 0 {
			width = 1
		}
		for _, part := range g.Parts() {
			strokePath(img, vp, part, width, rs.stroke)
		}

	case geom.KindPolygon, geom.KindMultiPolygon:
		for _, poly := range g.Polygons() {
			rings := make([][][2]float64, 0, len(poly))
			for _, ring := range poly {
				projected := make([][2]float64, len(ring))
				for i, coord := range ring {
					px, py := vp.pixel(coord[0], coord[1])
					projected[i] = [2]float64{px, py}
				}
				rings = append(rings, projected)
			}
			orientRings(rings)
			if drawFill {
				fillRings(img, rings, fill)
			}
			if rs.hasStroke {
				width := rs.strokeWidth
				if width <= 0 {
					width = 1
				}
				for _, ring := range rings {
					strokeProjected(img, ring, width, rs.stroke)
				}
			}
		}
	}
}

func (r *Renderer) drawRaster(img *image.RGBA, vp viewport, layer Layer, rs resolvedStyle) {
	grid := layer.grid
	nrows, ncols := grid.Dims()
	affine := grid.Affine()
	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			cat := grid.At(row, col)
			if cat == "" {
				continue // NoCategory renders transparent
			}
			c, ok := rs.table[cat]
			if !ok {
				continue // unreachable after Finalize validation
			}
			// Cell corners in pixel space
			x0, y0 := affine.Apply(float64(col), float64(row))
			x1, y1 := affine.Apply(float64(col+1), float64(row+1))
			px0, py0 := vp.pixel(x0, y0)
			px1, py1 := vp.pixel(x1, y1)
			rect := image.Rect(
				int(math.Floor(math.Min(px0, px1))),
				int(math.Floor(math.Min(py0, py1))),
				int(math.Ceil(math.Max(px0, px1))),
				int(math.Ceil(math.Max(py0, py1))),
			)
			draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Over)
		}
	}
}

// fillRings rasterizes a set of pixel-space rings as one path with even-odd
// hole semantics (holes wound opposite the exterior subtract coverage).
func fillRings(img *image.RGBA, rings [][][2]float64, c color.RGBA) {
	b := img.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		ras.MoveTo(float32(ring[0][0]), float32(ring[0][1]))
		for _, p := range ring[1:] {
			ras.LineTo(float32(p[0]), float32(p[1]))
		}
		ras.ClosePath()
	}
	ras.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokePath projects a world-coordinate path and strokes it.
func strokePath(img *image.RGBA, vp viewport, part [][]float64, width float64, c color.RGBA) {
	projected := make([][2]float64, len(part))
	for i, coord := range part {
		px, py := vp.pixel(coord[0], coord[1])
		projected[i] = [2]float64{px, py}
	}
	strokeProjected(img, projected, width, c)
}

// strokeProjected draws each segment of a pixel-space path as a filled quad
// of the given width.
func strokeProjected(img *image.RGBA, path [][2]float64, width float64, c color.RGBA) {
	half := width / 2
	for i := 0; i+1 < len(path); i++ {
		x0, y0 := path[i][0], path[i][1]
		x1, y1 := path[i+1][0], path[i+1][1]
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal
		nx, ny := -dy/length*half, dx/length*half
		quad := [][2]float64{
			{x0 + nx, y0 + ny},
			{x1 + nx, y1 + ny},
			{x1 - nx, y1 - ny},
			{x0 - nx, y0 - ny},
		}
		fillRings(img, [][][2]float64{quad}, c)
	}
}

// squareRing returns a closed square ring centered on (x, y).
func squareRing(x, y, radius float64) [][2]float64 {
	return [][2]float64{
		{x - radius, y - radius},
		{x + radius, y - radius},
		{x + radius, y + radius},
		{x - radius, y + radius},
	}
}

// orientRings winds the exterior ring counter-clockwise in pixel space and
// every hole clockwise, so hole coverage subtracts during rasterization.
func orientRings(rings [][][2]float64) {
	for i, ring := range rings {
		area := signedArea(ring)
		wantPositive := i == 0
		if (area > 0) != wantPositive {
			reverseRing(ring)
		}
	}
}

func signedArea(ring [][2]float64) float64 {
	area := 0.0
	for i := 0; i+1 < len(ring); i++ {
		area += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return area / 2
}

func reverseRing(ring [][2]float64) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
