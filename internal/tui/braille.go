package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a 2x4 micro-pixel canvas per terminal cell. Each cell also
// remembers the last layer that drew into it so it can be colored.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int8  // per-cell layer, -1 when untouched
	pen   int8
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int8, w)
		for j := range owner[i] {
			owner[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.owner[cy][cx] = b.pen
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) cell(x, y int) rune {
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// toStyledLines renders each run of cells owned by the same layer with that
// layer's style.
func (b *brailleBuf) toStyledLines(styles []lipgloss.Style) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		owner := int8(-1)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if owner >= 0 && int(owner) < len(styles) {
				sb.WriteString(styles[owner].Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			o := b.owner[y][x]
			if o != owner {
				flush()
				owner = o
			}
			run = append(run, b.cell(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
