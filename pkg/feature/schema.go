package feature

import (
	"fmt"
)

// ColumnType is the declared semantic type of an attribute column.
type ColumnType int

const (
	// ColumnNumeric holds float64 values (integers are widened on ingest).
	ColumnNumeric ColumnType = iota

	// ColumnText holds string values, including derived category labels.
	ColumnText
)

// String returns the string representation of the column type.
func (t ColumnType) String() string {
	switch t {
	case ColumnNumeric:
		return "Numeric"
	case ColumnText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Column declares one attribute column.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the ordered set of attribute columns of a table. Attribute
// values are validated against it at table construction.
type Schema []Column

// Column returns the declaration for name, or false when absent.
func (s Schema) Column(name string) (Column, bool) {
	for _, col := range s {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// validate checks the schema itself: non-empty names, no duplicates.
func (s Schema) validate() error {
	seen := make(map[string]bool, len(s))
	for _, col := range s {
		if col.Name == "" {
			return &ErrSchema{Reason: "column name is empty"}
		}
		if seen[col.Name] {
			return &ErrSchema{Column: col.Name, Reason: "duplicate column"}
		}
		seen[col.Name] = true
	}
	return nil
}

// checkValue validates one attribute value against a column declaration,
// widening integers into float64 for numeric columns. Returns the stored
// representation of the value.
func (s Schema) checkValue(col Column, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil // missing value, allowed in any column
	}
	switch col.Type {
	case ColumnNumeric:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		default:
			return nil, &ErrSchema{
				Column: col.Name,
				Reason: fmt.Sprintf("expected numeric value, got %T", v),
			}
		}
	case ColumnText:
		str, ok := v.(string)
		if !ok {
			return nil, &ErrSchema{
				Column: col.Name,
				Reason: fmt.Sprintf("expected string value, got %T", v),
			}
		}
		return str, nil
	default:
		return nil, &ErrSchema{Column: col.Name, Reason: "unknown column type"}
	}
}
