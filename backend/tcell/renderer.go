// Package tcell draws gui draw lists on a terminal through tcell and maps
// terminal mouse events to gui.InputState.
//
// One terminal cell stands for a CellWidth x CellHeight block of GUI
// pixels. Solid primitives become cell backgrounds, glyph quads become
// runes.
package tcell

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/toolwindows/gui"
)

// Cell size in GUI pixels. It matches the built-in font's glyph cell so
// one glyph maps to one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 8
)

// fontTextureID marks glyph quads. The terminal has no textures, any
// non-zero value works.
const fontTextureID = 1

type cell struct {
	bg, fg uint32
	r      rune
}

// Renderer implements gui.Renderer on a tcell.Screen.
type Renderer struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell
	background uint32
	status     string
}

// NewRenderer creates a renderer for an initialized screen.
func NewRenderer(screen tcell.Screen, background uint32) *Renderer {
	r := &Renderer{screen: screen, background: background}
	cols, rows := screen.Size()
	r.resizeCells(cols, rows)
	return r
}

// DisplaySize is the GUI display size covering the whole screen.
func (r *Renderer) DisplaySize() gui.Vec2 {
	return gui.Vec2{X: float32(r.cols * CellWidth), Y: float32(r.rows * CellHeight)}
}

// FontTextureID implements gui.Renderer.
func (r *Renderer) FontTextureID() uint32 {
	return fontTextureID
}

// Resize implements gui.Renderer. width and height are in GUI pixels.
func (r *Renderer) Resize(width, height int) {
	r.resizeCells(width/CellWidth, height/CellHeight)
}

func (r *Renderer) resizeCells(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.cells = make([]cell, r.cols*r.rows)
}

// SetStatus sets a line of text shown on the bottom row.
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// Render implements gui.Renderer.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil {
		return nil
	}
	dl.Finalize()

	for i := range r.cells {
		r.cells[i] = cell{bg: r.background}
	}

	for _, cmd := range dl.CmdBuffer {
		clip := cellClip(cmd.ClipRect, r.cols, r.rows)
		idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		vtx := dl.VtxBuffer[cmd.VertexOffset:]
		if cmd.TextureID != 0 {
			// Glyph quads: two triangles, first vertex is the top-left.
			for q := 0; q+6 <= len(idx); q += 6 {
				r.glyph(vtx[idx[q]], vtx[idx[q+2]], clip)
			}
			continue
		}
		for t := 0; t+3 <= len(idx); t += 3 {
			r.fill(vtx[idx[t]], vtx[idx[t+1]], vtx[idx[t+2]], clip)
		}
	}

	r.flush()
	return nil
}

// clipRect is a half-open cell range.
type clipRect struct{ x0, y0, x1, y1 int }

func cellClip(c [4]float32, cols, rows int) clipRect {
	return clipRect{
		x0: max(0, int(c[0])/CellWidth),
		y0: max(0, int(c[1])/CellHeight),
		x1: min(cols, ceilDiv(c[2], CellWidth)),
		y1: min(rows, ceilDiv(c[3], CellHeight)),
	}
}

func ceilDiv(v float32, d int) int {
	if v >= 1e8 {
		return 1 << 30
	}
	n := int(v)
	if float32(n) < v {
		n++
	}
	return (n + d - 1) / d
}

func (c clipRect) contains(x, y int) bool {
	return x >= c.x0 && x < c.x1 && y >= c.y0 && y < c.y1
}

func (r *Renderer) glyph(tl, br gui.Vertex, clip clipRect) {
	cx := int((tl.Pos[0]+br.Pos[0])/2) / CellWidth
	cy := int((tl.Pos[1]+br.Pos[1])/2) / CellHeight
	if !clip.contains(cx, cy) {
		return
	}
	ch := gui.GlyphRune(tl.TexCoord[0], tl.TexCoord[1])
	if runewidth.RuneWidth(ch) != 1 {
		ch = '?'
	}
	c := &r.cells[cy*r.cols+cx]
	c.r = ch
	c.fg = tl.Color
}

// fill paints the cells a triangle covers. Primitives thinner than a
// cell (lines, borders) paint every cell their bounds touch, others paint
// the cells whose center lies inside.
func (r *Renderer) fill(a, b, c gui.Vertex, clip clipRect) {
	minX := min(a.Pos[0], b.Pos[0], c.Pos[0])
	maxX := max(a.Pos[0], b.Pos[0], c.Pos[0])
	minY := min(a.Pos[1], b.Pos[1], c.Pos[1])
	maxY := max(a.Pos[1], b.Pos[1], c.Pos[1])
	thin := maxX-minX < CellWidth || maxY-minY < CellHeight

	x0, y0 := int(minX)/CellWidth, int(minY)/CellHeight
	// Bounds ending exactly on a cell edge do not reach into the next cell.
	x1, y1 := int(maxX-0.01)/CellWidth, int(maxY-0.01)/CellHeight
	for y := max(y0, clip.y0); y <= y1 && y < clip.y1; y++ {
		for x := max(x0, clip.x0); x <= x1 && x < clip.x1; x++ {
			if !thin {
				px := float32(x*CellWidth) + CellWidth/2
				py := float32(y*CellHeight) + CellHeight/2
				if !inTriangle(px, py, a.Pos, b.Pos, c.Pos) {
					continue
				}
			}
			cl := &r.cells[y*r.cols+x]
			cl.bg = blend(cl.bg, a.Color)
			if !thin && a.Color>>24 == 0xFF {
				// Opaque fills cover text drawn below them.
				cl.r = 0
			}
		}
	}
}

func inTriangle(px, py float32, a, b, c [2]float32) bool {
	d1 := edgeSign(px, py, a, b)
	d2 := edgeSign(px, py, b, c)
	d3 := edgeSign(px, py, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(px, py float32, a, b [2]float32) float32 {
	return (px-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(py-b[1])
}

// blend composites src over dst using src alpha.
func blend(dst, src uint32) uint32 {
	sr, sg, sb, sa := gui.UnpackRGBA(src)
	if sa == 255 {
		return src
	}
	dr, dg, db, _ := gui.UnpackRGBA(dst)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(sa) + uint32(d)*(255-uint32(sa))) / 255)
	}
	return gui.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), 255)
}

func tcellColor(c uint32) tcell.Color {
	r, g, b, _ := gui.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (r *Renderer) flush() {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			c := r.cells[y*r.cols+x]
			ch := c.r
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.Background(tcellColor(c.bg)).Foreground(tcellColor(c.fg))
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}

	if r.status != "" && r.rows > 0 {
		line := runewidth.Truncate(r.status, r.cols, "..")
		style := tcell.StyleDefault.Reverse(true)
		x := 0
		for _, ch := range line {
			r.screen.SetContent(x, r.rows-1, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
	}

	r.screen.Show()
}

// Cell returns the rune and background painted at a cell by the last
// Render, for tests and debugging.
func (r *Renderer) Cell(x, y int) (ch rune, bg uint32) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return 0, 0
	}
	c := r.cells[y*r.cols+x]
	return c.r, c.bg
}
