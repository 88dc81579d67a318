package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one terminal cell with optional foreground/background colors
// given as hex strings. Empty means the terminal default.
type cell struct {
	ch rune
	fg string
	bg string
}

// Canvas renders a positioned tree through a camera into a cell grid.
// The grid is rebuilt per frame; the tree itself is never touched, so
// a frame may safely run while key handlers mutate the camera between
// frames.
type Canvas struct {
	width  int
	height int
	grid   [][]cell

	styles map[string]lipgloss.Style
}

func NewCanvas() *Canvas {
	return &Canvas{styles: make(map[string]lipgloss.Style)}
}

// Render draws the tree as seen through cam into a width x height grid
// and returns one styled line per row. A nil root yields a blank
// frame rather than an error.
func (c *Canvas) Render(root *PlacedNode, cam *Camera, width, height int, selected *PlacedNode) []string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.grid = make([][]cell, height)
	for i := range c.grid {
		c.grid[i] = make([]cell, width)
		for j := range c.grid[i] {
			c.grid[i][j] = cell{ch: ' '}
		}
	}

	if root != nil {
		// Edges first so boxes draw over them.
		walkPlaced(root, func(n *PlacedNode) {
			for _, child := range n.Children {
				c.drawEdge(n, child, cam)
			}
		})
		walkPlaced(root, func(n *PlacedNode) {
			c.drawNode(n, cam, n == selected)
		})
	}

	return c.flush()
}

// drawEdge draws an orthogonal link from the parent's right anchor to
// the child's left anchor.
func (c *Canvas) drawEdge(parent, child *PlacedNode, cam *Camera) {
	x0, y0 := cam.Apply(parent.X+boxWidth(parent.Label), parent.Y)
	x1, y1 := cam.Apply(child.X, child.Y)

	row0 := cellRow(y0)
	row1 := cellRow(y1)
	if (row0 < 0 && row1 < 0) || (row0 >= c.height && row1 >= c.height) {
		return
	}

	col0 := cellCol(x0)
	col1 := cellCol(x1)
	mid := (col0 + col1) / 2

	if row0 == row1 {
		c.hline(row0, col0, col1)
		return
	}

	c.hline(row0, col0, mid-1)
	c.hline(row1, mid+1, col1)
	step := 1
	if row1 < row0 {
		step = -1
	}
	for r := row0 + step; r != row1; r += step {
		c.setCell(r, mid, '│', edgeHex, "")
	}
	if row1 > row0 {
		c.setCell(row0, mid, '╮', edgeHex, "")
		c.setCell(row1, mid, '╰', edgeHex, "")
	} else {
		c.setCell(row0, mid, '╯', edgeHex, "")
		c.setCell(row1, mid, '╭', edgeHex, "")
	}
}

func (c *Canvas) hline(row, from, to int) {
	if from > to {
		from, to = to, from
	}
	for col := from; col <= to; col++ {
		c.setCell(row, col, '─', edgeHex, "")
	}
}

// drawNode draws one node box with off-screen culling and zoom-gated
// label detail.
func (c *Canvas) drawNode(n *PlacedNode, cam *Camera, isSelected bool) {
	k := cam.Scale
	px, py := cam.Apply(n.X, n.Y)
	topPx := py - nodeBoxHeight/2*k
	botPx := py + nodeBoxHeight/2*k

	// Vertical culling, the only per-frame performance safeguard.
	if botPx < -cullMargin || topPx > float64(c.height)*cellHeight+cullMargin {
		return
	}

	col0 := cellCol(px)
	col1 := cellCol(px + boxWidth(n.Label)*k)
	if col1 <= col0 {
		col1 = col0 + 1
	}
	row0 := cellRow(topPx)
	row1 := cellRow(botPx)

	stroke := n.Stroke
	if isSelected {
		stroke = selectedHex
	}

	if row1 > row0 {
		for col := col0; col <= col1; col++ {
			hch := '─'
			if col == col0 {
				hch = '╭'
			} else if col == col1 {
				hch = '╮'
			}
			c.setCell(row0, col, hch, stroke, n.Fill)
			if hch == '╭' {
				hch = '╰'
			} else if hch == '╮' {
				hch = '╯'
			}
			c.setCell(row1, col, hch, stroke, n.Fill)
		}
		for row := row0 + 1; row < row1; row++ {
			c.setCell(row, col0, '│', stroke, n.Fill)
			c.setCell(row, col1, '│', stroke, n.Fill)
			for col := col0 + 1; col < col1; col++ {
				c.setCell(row, col, ' ', "", n.Fill)
			}
		}
	} else {
		// Too small for borders: a solid bar of the fill color.
		bg := n.Fill
		if isSelected {
			bg = n.Stroke
		}
		for col := col0; col <= col1; col++ {
			c.setCell(row0, col, ' ', "", bg)
		}
	}

	if k > labelZoomThreshold {
		c.drawLabel(n.Label, n.Fill, cellRow(py), col0+1, col1-1)
	}
}

// drawLabel writes the label into the box interior, clipped to its
// column range. A label that cannot fit at all is skipped, never an
// error.
func (c *Canvas) drawLabel(label, fill string, row, from, to int) {
	if to < from {
		return
	}
	col := from
	for _, r := range label {
		if col > to {
			break
		}
		c.setCell(row, col, r, labelHex, fill)
		col++
	}
}

func (c *Canvas) setCell(row, col int, ch rune, fg, bg string) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.grid[row][col] = cell{ch: ch, fg: fg, bg: bg}
}

// cellAt is a test hook; out-of-range positions return a blank cell.
func (c *Canvas) cellAt(row, col int) cell {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return cell{ch: ' '}
	}
	return c.grid[row][col]
}

// flush converts the grid into styled lines, grouping runs of cells
// that share colors so each row stays a handful of escape sequences.
func (c *Canvas) flush() []string {
	lines := make([]string, c.height)
	for i, row := range c.grid {
		var b strings.Builder
		var run strings.Builder
		runFg, runBg := "", ""
		emit := func() {
			if run.Len() == 0 {
				return
			}
			if runFg == "" && runBg == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(c.styleFor(runFg, runBg).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.fg != runFg || cl.bg != runBg {
				emit()
				runFg, runBg = cl.fg, cl.bg
			}
			run.WriteRune(cl.ch)
		}
		emit()
		lines[i] = b.String()
	}
	return lines
}

func (c *Canvas) styleFor(fg, bg string) lipgloss.Style {
	key := fg + "/" + bg
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[key] = s
	return s
}

// cellCol and cellRow map screen pixels to grid coordinates, flooring
// so negative positions stay off-grid instead of landing on column 0.
func cellCol(px float64) int { return int(math.Floor(px / cellWidth)) }
func cellRow(py float64) int { return int(math.Floor(py / cellHeight)) }
