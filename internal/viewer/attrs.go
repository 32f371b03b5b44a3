package viewer

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"github.com/beetlebugorg/carto/pkg/feature"
)

const maxAttrRows = 500

// buildAttrs fills the bubbles table from the dataset schema and rows.
func (m *Model) buildAttrs() {
	schema := m.data.Schema()
	if len(schema) == 0 {
		m.showAttrs = false
		m.status = "dataset has no attributes"
		return
	}

	cols := make([]table.Column, 0, len(schema)+1)
	cols = append(cols, table.Column{Title: "#", Width: 5})
	for _, c := range schema {
		w := len(c.Name) + 2
		if w < 8 {
			w = 8
		}
		if w > 24 {
			w = 24
		}
		cols = append(cols, table.Column{Title: c.Name, Width: w})
	}

	n := m.data.Len()
	if n > maxAttrRows {
		n = maxAttrRows
	}
	rows := make([]table.Row, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, len(schema)+1)
		row = append(row, strconv.Itoa(i))
		for _, c := range schema {
			row = append(row, formatValue(m.data, i, c))
		}
		rows = append(rows, table.Row(row))
	}

	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.attrBuilt = true
}

func formatValue(data *feature.Table, i int, col feature.Column) string {
	v, ok := data.Value(i, col.Name)
	if !ok || v == nil {
		return ""
	}
	if col.Type == feature.ColumnNumeric {
		if f, ok := data.Numeric(i, col.Name); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return fmt.Sprint(v)
}
