package viewer

import (
	"fmt"
	"strings"

	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/geom"
)

// micro projects a world coordinate into braille micro coordinates for a
// w-by-h cell viewport, applying zoom around the extent center and the pan
// offsets.
func (m Model) micro(x, y float64, w, h int) (int, int, bool) {
	bw, bh := m.bounds.Width(), m.bounds.Height()
	if bw <= 0 && bh <= 0 {
		return 0, 0, false
	}
	if bw <= 0 {
		bw = bh
	}
	if bh <= 0 {
		bh = bw
	}
	nx := (x - m.bounds.MinX) / bw
	ny := (y - m.bounds.MinY) / bh
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	mw, mh := w*2, h*4
	sx := int(zx*float64(mw-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(mh-1)) + m.offsetY*4
	return sx, sy, true
}

// renderMap draws every geometry in the table onto a braille canvas.
func (m Model) renderMap(w, h int) string {
	cv := newCanvas(w, h)
	geoms := m.data.Geometries()
	for i := 0; i < geoms.Len(); i++ {
		m.drawGeometry(cv, geoms.At(i), w, h)
	}
	return strings.Join(cv.rows(), "\n")
}

func (m Model) drawGeometry(cv *canvas, g geom.Geometry, w, h int) {
	switch g.Kind() {
	case geom.KindPoint, geom.KindMultiPoint:
		for _, coord := range g.Coordinates() {
			if mx, my, ok := m.micro(coord[0], coord[1], w, h); ok {
				cv.set(mx, my)
			}
		}

	case geom.KindLineString, geom.KindMultiLineString:
		for _, part := range g.Parts() {
			m.drawPath(cv, part, w, h, false)
		}

	case geom.KindPolygon, geom.KindMultiPolygon:
		for _, poly := range g.Polygons() {
			for _, ring := range poly {
				m.drawPath(cv, ring, w, h, true)
			}
		}
	}
}

func (m Model) drawPath(cv *canvas, coords [][]float64, w, h int, closed bool) {
	var prev [2]int
	havePrev := false
	first := [2]int{}
	for _, coord := range coords {
		mx, my, ok := m.micro(coord[0], coord[1], w, h)
		if !ok {
			continue
		}
		if havePrev {
			cv.line(prev[0], prev[1], mx, my)
		} else {
			first = [2]int{mx, my}
		}
		prev = [2]int{mx, my}
		havePrev = true
	}
	if closed && havePrev {
		cv.line(prev[0], prev[1], first[0], first[1])
	}
}

func statusSummary(data *feature.Table) string {
	counts := make(map[geom.Kind]int)
	geoms := data.Geometries()
	for i := 0; i < geoms.Len(); i++ {
		counts[geoms.At(i).Kind()]++
	}
	parts := make([]string, 0, len(counts))
	for _, k := range []geom.Kind{
		geom.KindPoint, geom.KindMultiPoint,
		geom.KindLineString, geom.KindMultiLineString,
		geom.KindPolygon, geom.KindMultiPolygon,
	} {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
		}
	}
	if len(parts) == 0 {
		return "empty dataset"
	}
	return fmt.Sprintf("%d features  %s  %s", data.Len(), strings.Join(parts, " "),
		data.Geometries().SRID())
}
