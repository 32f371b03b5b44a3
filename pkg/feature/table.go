package feature

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/carto/pkg/classify"
	"github.com/beetlebugorg/carto/pkg/geom"
)

// NoCategory marks an attribute value that a classification could not bin:
// out of range, missing, or NaN. It is stored in place so no row is ever
// silently dropped.
const NoCategory = classify.NoCategory

// Row holds one feature's attribute values keyed by column name.
type Row map[string]interface{}

// Table pairs rows of schema-validated attributes with exactly one geometry
// per row. Row order is significant and preserved by every operation.
//
// Tables are immutable snapshots: Filter, DeriveColumn and RecastGeometries
// return new tables, and rendering never mutates one.
type Table struct {
	schema Schema
	rows   []Row
	geoms  *Collection
}

// NewTable constructs a table, validating every attribute value against the
// schema and checking that the row count matches the collection length.
func NewTable(schema Schema, rows []Row, geoms *Collection) (*Table, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	if geoms == nil {
		return nil, &ErrTable{Reason: "geometry collection is nil"}
	}
	if len(rows) != geoms.Len() {
		return nil, &ErrTable{
			Reason: fmt.Sprintf("%d attribute rows but %d geometries", len(rows), geoms.Len()),
		}
	}

	stored := make([]Row, len(rows))
	for i, row := range rows {
		out := make(Row, len(schema))
		for _, col := range schema {
			v, err := schema.checkValue(col, row[col.Name])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[col.Name] = v
		}
		for name := range row {
			if _, ok := schema.Column(name); !ok {
				return nil, &ErrSchema{Column: name, Reason: fmt.Sprintf("row %d has undeclared column", i)}
			}
		}
		stored[i] = out
	}

	return &Table{schema: schema, rows: stored, geoms: geoms}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Schema returns a copy of the table's column declarations.
func (t *Table) Schema() Schema {
	return append(Schema(nil), t.schema...)
}

// Geometries returns the geometry collection detached from the attributes.
// Geometric operations (bounds, spatial queries) operate purely on it.
func (t *Table) Geometries() *Collection {
	return t.geoms
}

// Row returns a copy of the attribute values of row i.
func (t *Table) Row(i int) Row {
	out := make(Row, len(t.rows[i]))
	for k, v := range t.rows[i] {
		out[k] = v
	}
	return out
}

// Value returns the attribute value at (row, column), and whether the column
// exists in the schema.
func (t *Table) Value(i int, column string) (interface{}, bool) {
	if _, ok := t.schema.Column(column); !ok {
		return nil, false
	}
	return t.rows[i][column], true
}

// Numeric returns the value at (row, column) as a float64. Missing values
// report NaN and false.
func (t *Table) Numeric(i int, column string) (float64, bool) {
	v, ok := t.Value(i, column)
	if !ok || v == nil {
		return math.NaN(), false
	}
	n, ok := v.(float64)
	if !ok {
		return math.NaN(), false
	}
	return n, true
}

// Filter returns a new table containing only the rows matching the
// predicate, geometries subset in lockstep, row order preserved.
func (t *Table) Filter(pred func(Row) bool) *Table {
	keep := make([]int, 0, len(t.rows))
	rows := make([]Row, 0, len(t.rows))
	for i, row := range t.rows {
		if pred(row) {
			keep = append(keep, i)
			rows = append(rows, row)
		}
	}
	return &Table{
		schema: t.schema,
		rows:   rows,
		geoms:  t.geoms.Subset(keep),
	}
}

// ClassifyOptions configures DeriveColumn bin edges.
//
// Bins are right-closed intervals (breaks[i], breaks[i+1]]. IncludeLowest
// closes the first bin on the left so a value equal to the lowest break is
// binned rather than marked NoCategory.
type ClassifyOptions struct {
	IncludeLowest bool
}

// DefaultClassifyOptions returns the default bin-edge behavior.
func DefaultClassifyOptions() ClassifyOptions {
	return ClassifyOptions{IncludeLowest: true}
}

// DeriveColumn classifies the numeric column src into the labeled bins
// defined by breaks (n+1 increasing values, n labels) and returns a new
// table with the result appended as Text column dst. Values outside the
// break range or missing become NoCategory; no row is dropped.
//
// Fails with a breakpoint error when breaks are not strictly increasing,
// fewer than 2 breaks are supplied, or the label count does not match, and
// with ErrSchema when src is not a Numeric column or dst already exists.
func (t *Table) DeriveColumn(src, dst string, breaks []float64, labels []string, opts ClassifyOptions) (*Table, error) {
	col, ok := t.schema.Column(src)
	if !ok {
		return nil, &ErrSchema{Column: src, Reason: "no such column"}
	}
	if col.Type != ColumnNumeric {
		return nil, &ErrSchema{Column: src, Reason: "derive requires a Numeric column"}
	}
	if _, exists := t.schema.Column(dst); exists {
		return nil, &ErrSchema{Column: dst, Reason: "column already exists"}
	}

	values := make([]float64, len(t.rows))
	for i := range t.rows {
		if n, ok := t.Numeric(i, src); ok {
			values[i] = n
		} else {
			values[i] = math.NaN()
		}
	}

	cats, err := classify.Slice(values, breaks, labels, classify.Options{
		IncludeLowest: opts.IncludeLowest,
	})
	if err != nil {
		return nil, err
	}

	schema := append(t.Schema(), Column{Name: dst, Type: ColumnText})
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		out := make(Row, len(row)+1)
		for k, v := range row {
			out[k] = v
		}
		out[dst] = cats[i]
		rows[i] = out
	}

	return &Table{schema: schema, rows: rows, geoms: t.geoms}, nil
}

// RecastGeometries returns a new table whose geometries are all recast to
// the given kind. Attributes are unchanged.
func (t *Table) RecastGeometries(to geom.Kind) (*Table, error) {
	geoms := make([]geom.Geometry, t.geoms.Len())
	for i := 0; i < t.geoms.Len(); i++ {
		recast, err := t.geoms.At(i).Recast(to)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		geoms[i] = recast
	}
	return &Table{
		schema: t.schema,
		rows:   t.rows,
		geoms:  NewCollection(t.geoms.SRID(), geoms...),
	}, nil
}

// Categories returns the distinct values of a Text column in first-seen row
// order, excluding NoCategory and missing values.
func (t *Table) Categories(column string) ([]string, error) {
	col, ok := t.schema.Column(column)
	if !ok {
		return nil, &ErrSchema{Column: column, Reason: "no such column"}
	}
	if col.Type != ColumnText {
		return nil, &ErrSchema{Column: column, Reason: "categories require a Text column"}
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for i := range t.rows {
		v, _ := t.Value(i, column)
		s, ok := v.(string)
		if !ok || s == NoCategory || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
