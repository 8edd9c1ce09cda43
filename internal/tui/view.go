package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)
	contentHeight := mapHeight

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	header := titleStyle.Render(" turfgeo ─ circles and polygon differences ") + m.renderLegend()
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// track map size for inspect (use full area; map canvas has no border)
	m.mapW = max(8, mapWidth)
	m.mapH = max(4, mapHeight)
	var mapView string
	if m.showAttrs {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var canvas string
		if m.pasteMode {
			m.ta.SetWidth(m.mapW)
			m.ta.SetHeight(min(m.mapH, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderMap(m.mapW, m.mapH)
		}
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)
	}

	// inspect popup (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderLegend lists the layers in their map colors; hidden ones are dimmed.
func (m Model) renderLegend() string {
	parts := make([]string, 0, numLayers)
	for l := layer(0); l < numLayers; l++ {
		label := fmt.Sprintf("%d %s", l+1, l)
		if m.show[l] {
			parts = append(parts, layerStyles[l].Render(label))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab files",
		"Enter subject",
		"x clip",
		"c circle",
		"d diff",
		"p paste",
		"a attrs",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
