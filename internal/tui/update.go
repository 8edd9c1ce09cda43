package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"turfgeo/internal/geom"
	"turfgeo/internal/measurement"
)

const sidebarWidth = 28

// layout returns the map origin and size for the current window.
func (m Model) layout() (originX, originY, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
		originX = sw + 1
	}
	headerHeight, footerHeight := 1, 2
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, max(10, m.width)-sw-1)
	return originX, headerHeight, w, h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, w, h := m.layout()
		m.mapW, m.mapH = max(8, w), max(4, h)
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs {
			switch msg.String() {
			case "a", "esc":
				m.showAttrs = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3":
			l := layer(msg.String()[0] - '1')
			m.show[l] = !m.show[l]
			m.status = fmt.Sprintf("%s: %v", l, m.show[l])
		case "+", "=":
			m.zoom = clampZoom(m.zoom * 1.2)
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		case "-", "_":
			m.zoom = clampZoom(m.zoom / 1.2)
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		case "tab":
			m.showSidebar = !m.showSidebar
			_, _, w, h := m.layout()
			m.mapW, m.mapH = max(8, w), max(4, h)
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, h-2)
			}
			return m, nil
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = true
			m.refreshAttrs()
		case "i":
			m.inspectPopup = m.inspect()
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
		case "c":
			if !m.hoverHasGeo {
				m.status = "circle: hover over the map first"
				break
			}
			m.addCircle(orb.Point{m.hoverLon, m.hoverLat})
		case "d":
			if s := m.recompute(); s != "" {
				m.status = s
			} else {
				m.status = "difference: load a subject and a clip first"
			}
			m.show[layerResult] = true
		case "x":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path, layerClip)
				}
			}
			return m, nil
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path, layerSubject)
				}
			}
			return m, nil
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePaste handles keys while the WKT textarea is open. The parsed
// geometry replaces the clip layer.
func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		summary := m.setLayer(layerClip, d)
		m.status = joinStatus("clip: pasted WKT  counts: "+m.counts(), summary)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// updateHover tracks the cursor over the map: its lon/lat and the nearest
// vertex to highlight.
func (m *Model) updateHover(x, y int) {
	ox, oy, w, h := m.layout()
	if x < ox || x >= ox+w || y < oy || y >= oy+h {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	cx, cy := x-ox, y-oy
	m.hoverLon, m.hoverLat, m.hoverHasGeo = m.cellToLonLat(cx, cy, w, h)
	bx, by, _, ok := m.nearestMicro(cx*2, cy*4, w, h)
	if !ok {
		bx, by = cx*2, cy*4
	}
	m.hoverMicX, m.hoverMicY = bx, by
}

// inspect summarizes the layers and the vertex nearest the viewport center.
func (m Model) inspect() string {
	out := []string{
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		"counts: " + m.counts(),
	}
	for l := layer(0); l < numLayers; l++ {
		if g, err := m.layers[l].Polygonal(); err == nil {
			out = append(out, fmt.Sprintf("%s area: %.3f km²", l, measurement.Area(g)/1e6))
		}
	}
	if p, ok := m.inspectNearest(); ok {
		out = append(out, fmt.Sprintf("nearest: lon=%.6f lat=%.6f", p.Lon(), p.Lat()))
	} else {
		out = append(out, "no feature nearby")
	}
	out = append(out, fmt.Sprintf("circle: %g %s, %d steps", m.cfg.Radius, m.cfg.Units, m.cfg.Steps))
	return strings.Join(out, "\n")
}
