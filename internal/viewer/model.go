// Package viewer is a terminal viewer for feature tables. It projects
// geometries onto a braille canvas with pan and zoom, and can flip to an
// attribute table view of the loaded dataset.
package viewer

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/geom"
)

type Model struct {
	width  int
	height int

	title  string
	data   *feature.Table
	bounds geom.Bounds

	// viewport
	zoom    float64
	offsetX int
	offsetY int
	mapW    int
	mapH    int

	helpVisible bool
	showAttrs   bool
	status      string

	// attributes table
	tbl       table.Model
	attrBuilt bool
}

// New creates a viewer over a loaded feature table.
func New(title string, data *feature.Table) Model {
	m := Model{
		title:       title,
		data:        data,
		bounds:      data.Geometries().Bounds(),
		zoom:        1.0,
		helpVisible: true,
		status:      statusSummary(data),
	}
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
