package tui

import (
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"turfgeo/internal/geom"
	"turfgeo/internal/measurement"
	"turfgeo/internal/transform"
)

type layer int

const (
	layerSubject layer = iota
	layerClip
	layerResult
	numLayers
)

func (l layer) String() string {
	switch l {
	case layerSubject:
		return "subject"
	case layerClip:
		return "clip"
	case layerResult:
		return "result"
	}
	return "?"
}

// Config controls the circles the viewer builds and the transformer used
// for differences.
type Config struct {
	Radius      float64
	Steps       int
	Units       measurement.Unit
	Transformer *transform.Transformer
}

func (c Config) withDefaults() Config {
	if c.Radius <= 0 {
		c.Radius = 10
	}
	if c.Steps <= 0 {
		c.Steps = transform.DefaultSteps
	}
	if c.Units == "" {
		c.Units = transform.DefaultUnits
	}
	if c.Transformer == nil {
		c.Transformer = transform.New()
	}
	return c
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	cfg    Config

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	layers [numLayers]geom.Data
	show   [numLayers]bool
	bbox   geom.BBox

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(cfg Config) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "turfgeo ready",
		cfg:         cfg.withDefaults(),
		show:        [numLayers]bool{true, true, true},
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT for the clip layer. Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPaths preloads the subject and, optionally, the clip layer.
func NewWithPaths(cfg Config, subjectPath, clipPath string) Model {
	m := New(cfg)
	if subjectPath != "" {
		m.loadPath(subjectPath, layerSubject)
	}
	if clipPath != "" {
		m.loadPath(clipPath, layerClip)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setLayer replaces a layer, recomputes the difference and refits the view.
// It returns the difference summary, if one was computed.
func (m *Model) setLayer(l layer, d geom.Data) string {
	m.layers[l] = d
	m.show[l] = true
	summary := m.recompute()
	m.bbox = geom.Merge(m.layers[:]...).BBox
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	return summary
}

// recompute refreshes the result layer as subject minus clip.
func (m *Model) recompute() string {
	m.layers[layerResult] = geom.Data{}
	subject, clipping := m.layers[layerSubject], m.layers[layerClip]
	if len(subject.Polygons) == 0 || len(clipping.Polygons) == 0 {
		return ""
	}
	g1, _ := subject.Polygonal()
	g2, _ := clipping.Polygonal()
	f, err := m.cfg.Transformer.PolygonDifference(g1, g2)
	if err != nil {
		return "difference error: " + err.Error()
	}
	if f == nil {
		return "difference: empty"
	}
	var d geom.Data
	d.AddFeature(f)
	m.layers[layerResult] = d
	return fmt.Sprintf("difference: %s %.1f km²", f.Geometry.GeoJSONType(), measurement.Area(f.Geometry)/1e6)
}

// addCircle unions a circle around p into the clip layer. Overlapping
// circles are merged and enclosed gaps become holes, so the clip stays a
// set of non-overlapping polygons.
func (m *Model) addCircle(p orb.Point) {
	f, err := m.cfg.Transformer.Circle(p, m.cfg.Radius,
		transform.WithSteps(m.cfg.Steps), transform.WithUnits(m.cfg.Units))
	if err != nil {
		m.status = "circle error: " + err.Error()
		return
	}
	old := m.layers[layerClip]
	var next geom.Data
	if existing, err := old.Polygonal(); err == nil {
		merged, err := m.cfg.Transformer.Union(existing, f.Geometry)
		if err != nil {
			m.status = "circle error: " + err.Error()
			return
		}
		next.Add(merged)
		next.Features = append(append(next.Features, old.Features...), f)
	} else {
		next.AddFeature(f)
	}
	m.layers[layerClip] = next
	m.show[layerClip] = true
	m.status = joinStatus(
		fmt.Sprintf("circle %g %s at %.5f,%.5f", m.cfg.Radius, m.cfg.Units, p.Lon(), p.Lat()),
		m.recompute())
	// viewport stays fixed so the circle lands under the cursor
}

func (m Model) counts() string {
	s := ""
	for l := layer(0); l < numLayers; l++ {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", l, len(m.layers[l].Polygons)+len(m.layers[l].Lines)+len(m.layers[l].Points))
	}
	return s
}

func joinStatus(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += p
	}
	return out
}
