package main

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportFontSize  = 12.0
	exportPadding   = 40.0
	exportCornerRad = 6.0
	exportLabelInset = 10.0
)

// exportPNG draws the whole positioned tree to a PNG file using the
// same geometry as the interactive canvas, independent of the current
// camera. Label widths come from the real font metrics here, so box
// widths may differ slightly from their on-screen approximation.
func exportPNG(doc *Document, filename string) error {
	if doc == nil || doc.Root == nil {
		return fmt.Errorf("nothing to export")
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    exportFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	// Measuring context; the real one needs the bounds first.
	mc := gg.NewContext(1, 1)
	mc.SetFontFace(face)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	walkPlaced(doc.Root, func(n *PlacedNode) {
		w := measuredBoxWidth(mc, n.Label)
		minX = math.Min(minX, n.X)
		maxX = math.Max(maxX, n.X+w)
		minY = math.Min(minY, n.Y-nodeBoxHeight/2)
		maxY = math.Max(maxY, n.Y+nodeBoxHeight/2)
	})

	imageWidth := int(maxX - minX + 2*exportPadding)
	imageHeight := int(maxY - minY + 2*exportPadding)
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor(backgroundHex)
	dc.Clear()
	dc.SetFontFace(face)

	ox := exportPadding - minX
	oy := exportPadding - minY

	// Edges behind boxes, as horizontal-link curves.
	dc.SetHexColor(edgeHex)
	dc.SetLineWidth(2)
	walkPlaced(doc.Root, func(n *PlacedNode) {
		w := measuredBoxWidth(dc, n.Label)
		for _, child := range n.Children {
			x0, y0 := n.X+w+ox, n.Y+oy
			x1, y1 := child.X+ox, child.Y+oy
			mid := (x0 + x1) / 2
			dc.MoveTo(x0, y0)
			dc.CubicTo(mid, y0, mid, y1, x1, y1)
			dc.Stroke()
		}
	})

	walkPlaced(doc.Root, func(n *PlacedNode) {
		w := measuredBoxWidth(dc, n.Label)
		x := n.X + ox
		y := n.Y + oy
		dc.DrawRoundedRectangle(x, y-nodeBoxHeight/2, w, nodeBoxHeight, exportCornerRad)
		dc.SetHexColor(n.Fill)
		dc.FillPreserve()
		dc.SetHexColor(n.Stroke)
		dc.SetLineWidth(1.5)
		dc.Stroke()

		dc.SetHexColor(labelHex)
		dc.DrawStringAnchored(n.Label, x+exportLabelInset, y, 0, 0.35)
	})

	return dc.SavePNG(filename)
}

// measuredBoxWidth sizes a box from the font's measured label width,
// with the same minimum and padding as the screen renderer.
func measuredBoxWidth(dc *gg.Context, label string) float64 {
	lw, _ := dc.MeasureString(label)
	return math.Max(minNodeWidth, lw+labelPadding)
}
