package main

// Layout spacing in world pixels. One depth level advances X, one
// sibling slot advances Y, so trees grow to the right.
const (
	levelSpacing   = 200.0
	siblingSpacing = 40.0
)

// Camera defaults. Zoom bounds can be overridden in ~/.jackvizrc.
const (
	defaultZoomMin     = 0.1
	defaultZoomMax     = 4.0
	defaultWheelFactor = 1.1

	initialPanX  = 100.0
	initialScale = 0.8

	keyPanStep    = 40.0 // arrow-key pan step in world pixels
	keyZoomFactor = 1.25
)

// Node box geometry in world pixels.
const (
	nodeBoxHeight = 26.0
	minNodeWidth  = 120.0
	labelPadding  = 30.0
	glyphWidth    = 8.0 // monospace advance used to size labels on screen
)

// Renderer. A terminal cell covers cellWidth x cellHeight world pixels
// at scale 1, matching the cell metrics of the PNG exporter.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	// Nodes whose vertical extent misses the viewport by more than
	// cullMargin pixels are skipped entirely.
	cullMargin = 50.0

	// Labels are drawn only above this zoom scale; below it boxes
	// render as bare color bars.
	labelZoomThreshold = 0.4
)

// Chrome colors (the node palette lives in style.go).
const (
	backgroundHex = "#0d1117"
	edgeHex       = "#30363d"
	labelHex      = "#ffffff"
	selectedHex   = "#f0f6fc"
)
