package tui

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// renderMap draws the visible layers into a w x h cell canvas. Subject and
// clip are outlined; the result is filled so it stands out over both.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	for l := layer(0); l < numLayers; l++ {
		if !m.show[l] {
			continue
		}
		br.pen = int8(l)
		d := m.layers[l]
		for _, poly := range d.Polygons {
			rings := m.projectRings(poly, w, h)
			if l == layerResult {
				fillEvenOdd(br, rings, h*4)
			}
			for _, r := range rings {
				for i := range r {
					a, b := r[i], r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
		}
		for _, ls := range d.Lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
		for _, p := range d.Points {
			if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
				br.setPixel(mx, my)
			}
		}
	}
	lines := br.toStyledLines(layerStyles)

	// Hover highlight: mark the nearest vertex cell
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			row := []rune(br.toLines()[cy])
			lines[cy] = string(row[:cx]) + hoverStyle.Render("◯") + string(row[cx+1:])
		}
	}
	return strings.Join(lines, "\n")
}

// projectRings maps the rings of poly to micro coordinates, dropping rings
// that collapse below three vertices.
func (m Model) projectRings(poly orb.Polygon, w, h int) [][][2]int {
	var out [][][2]int
	for _, ring := range poly {
		var sm [][2]int
		for _, p := range ring {
			if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
				sm = append(sm, [2]int{mx, my})
			}
		}
		if len(sm) >= 3 {
			out = append(out, sm)
		}
	}
	return out
}

// fillEvenOdd scanline-fills rings with the even-odd rule, so holes stay open.
func fillEvenOdd(br *brailleBuf, rings [][][2]int, hMic int) {
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, r := range rings {
			for i := range r {
				a, b := r[i], r[(i+1)%len(r)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// eachVertex calls fn for every vertex of the visible layers.
func (m Model) eachVertex(fn func(p orb.Point)) {
	for l := layer(0); l < numLayers; l++ {
		if !m.show[l] {
			continue
		}
		d := m.layers[l]
		for _, p := range d.Points {
			fn(p)
		}
		for _, ls := range d.Lines {
			for _, p := range ls {
				fn(p)
			}
		}
		for _, poly := range d.Polygons {
			for _, r := range poly {
				for _, p := range r {
					fn(p)
				}
			}
		}
	}
}

// nearestMicro returns the micro coordinates of the vertex closest to
// (hx, hy) on a w x h map.
func (m Model) nearestMicro(hx, hy, w, h int) (int, int, orb.Point, bool) {
	best := 1<<31 - 1
	bx, by := hx, hy
	var bp orb.Point
	m.eachVertex(func(p orb.Point) {
		mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			return
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best, bx, by, bp = d, mx, my, p
		}
	})
	return bx, by, bp, best != 1<<31-1
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (orb.Point, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	_, _, p, ok := m.nearestMicro(w, h*2, w, h)
	return p, ok
}
