package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	baseFg   = lipgloss.Color("#E6E6E6")
	dimFg    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg = lipgloss.Color("#2D7FF9")
	border   = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := m.width
	if contentWidth < 10 {
		contentWidth = 10
	}

	header := lipgloss.NewStyle().Width(contentWidth).
		Render(titleStyle.Render(" cartoview ─ " + m.title + " "))

	m.mapW = contentWidth
	m.mapH = contentHeight

	var body string
	if m.showAttrs {
		m.tbl.SetHeight(minInt(contentHeight-2, 20))
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		body = lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).
			Render(m.renderMap(m.mapW, m.mapH))
	}

	status := dimStyle.Render(" " + m.status + " ")
	help := ""
	if m.helpVisible {
		keys := []string{"↑↓←→ pan", "+/- zoom", "0 reset", "a attrs", "h help", "q quit"}
		help = dimStyle.Render("  " + strings.Join(keys, "  "))
	}
	extent := dimStyle.Render(fmt.Sprintf("  [%.3f %.3f %.3f %.3f]",
		m.bounds.MinX, m.bounds.MinY, m.bounds.MaxX, m.bounds.MaxY))
	footer := lipgloss.NewStyle().Width(contentWidth).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help, extent))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
