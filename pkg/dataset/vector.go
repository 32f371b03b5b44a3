// Package dataset reads vector and raster datasets from local files or from
// the built-in catalog of remote reference datasets.
//
// Vector data arrives as GeoJSON and decodes into a feature.Table. Raster
// data arrives as ESRI ASCII grids or TIFF images and decodes into a
// raster.Grid. Remote fetches go through an LRU cache so repeated loads of
// the same dataset hit the network once.
package dataset

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/geom"
)

// ReadVector loads a GeoJSON file into a feature table.
//
// GeoJSON coordinates are geographic by definition, so the resulting table's
// geometries carry SRID 4326.
//
// Example:
//
//	table, err := dataset.ReadVector("countries.geojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %d features\n", table.Len())
func ReadVector(path string) (*feature.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ErrUnreadableFile{Path: path, Err: err}
	}
	defer file.Close()

	table, err := DecodeVector(file)
	if err != nil {
		return nil, &ErrUnreadableFile{Path: path, Err: err}
	}
	return table, nil
}

// DecodeVector decodes a GeoJSON feature collection into a feature table.
//
// The schema is inferred from the feature properties: a property whose
// non-null values are all JSON numbers becomes a Numeric column, everything
// else becomes a Text column. Columns are ordered by name so the inferred
// schema is deterministic.
func DecodeVector(r io.Reader) (*feature.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	geoms := make([]geom.Geometry, 0, len(fc.Features))
	for i, f := range fc.Features {
		g, err := convertGeometry(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		geoms = append(geoms, g)
	}

	schema := inferSchema(fc.Features)
	rows := make([]feature.Row, len(fc.Features))
	for i, f := range fc.Features {
		rows[i] = buildRow(schema, f.Properties)
	}

	return feature.NewTable(schema, rows, feature.NewCollection(geom.SRIDWGS84, geoms...))
}

// inferSchema scans every feature's properties and assigns each property a
// column type. Numeric wins only when all non-null values are numbers.
func inferSchema(features []*geojson.Feature) feature.Schema {
	numeric := make(map[string]bool)
	seen := make(map[string]bool)
	for _, f := range features {
		for name, v := range f.Properties {
			if v == nil {
				continue
			}
			_, isNum := v.(float64)
			if !seen[name] {
				seen[name] = true
				numeric[name] = isNum
			} else if !isNum {
				numeric[name] = false
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	schema := make(feature.Schema, 0, len(names))
	for _, name := range names {
		t := feature.ColumnText
		if numeric[name] {
			t = feature.ColumnNumeric
		}
		schema = append(schema, feature.Column{Name: name, Type: t})
	}
	return schema
}

func buildRow(schema feature.Schema, props geojson.Properties) feature.Row {
	row := make(feature.Row, len(schema))
	for _, col := range schema {
		v, ok := props[col.Name]
		if !ok || v == nil {
			row[col.Name] = nil
			continue
		}
		switch col.Type {
		case feature.ColumnNumeric:
			row[col.Name] = v
		case feature.ColumnText:
			if s, ok := v.(string); ok {
				row[col.Name] = s
			} else {
				row[col.Name] = fmt.Sprint(v)
			}
		}
	}
	return row
}

func convertGeometry(og orb.Geometry) (geom.Geometry, error) {
	switch o := og.(type) {
	case orb.Point:
		return geom.NewPoint([]float64{o[0], o[1]})
	case orb.MultiPoint:
		return geom.NewMultiPoint(convertLine(orb.LineString(o)))
	case orb.LineString:
		return geom.NewLineString(convertLine(o))
	case orb.MultiLineString:
		lines := make([][][]float64, len(o))
		for i, line := range o {
			lines[i] = convertLine(line)
		}
		return geom.NewMultiLineString(lines)
	case orb.Polygon:
		return geom.NewPolygon(convertRings(o))
	case orb.MultiPolygon:
		polys := make([][][][]float64, len(o))
		for i, poly := range o {
			polys[i] = convertRings(poly)
		}
		return geom.NewMultiPolygon(polys)
	default:
		return geom.Geometry{}, fmt.Errorf("unsupported geometry type %q", og.GeoJSONType())
	}
}

func convertLine(line orb.LineString) [][]float64 {
	coords := make([][]float64, len(line))
	for i, p := range line {
		coords[i] = []float64{p[0], p[1]}
	}
	return coords
}

func convertRings(poly orb.Polygon) [][][]float64 {
	rings := make([][][]float64, len(poly))
	for i, ring := range poly {
		rings[i] = convertLine(orb.LineString(ring))
	}
	return rings
}
