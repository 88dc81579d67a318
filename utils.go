package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// canvasTop returns the number of rows above the canvas (the buffer
// bar, when more than one document is open).
func (m *model) canvasTop() int {
	if m.docs.Len() > 1 {
		return 1
	}
	return 0
}

// canvasHeight returns the rows available to the canvas after the
// buffer bar and status line.
func (m *model) canvasHeight() int {
	h := m.height - m.canvasTop() - 1
	if h < 1 {
		h = 1
	}
	return h
}

// resetCamera restores the fixed initial transform: slight right
// inset, vertically centered, at the default zoom.
func (m *model) resetCamera() {
	m.camera = Camera{
		PanX:  initialPanX,
		PanY:  float64(m.canvasHeight()) * cellHeight / 2,
		Scale: initialScale,
	}
}

// setActiveDocument switches the rendered tree and resets the camera.
// An out-of-range index is reported and leaves both the active
// document and the camera untouched.
func (m *model) setActiveDocument(i int) {
	if err := m.docs.SetActive(i); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.resetCamera()
	m.errorMessage = ""
	m.statusMessage = ""
	m.selected = m.docs.Active().Root
}

// yankSelected copies the selected node's label to the system
// clipboard.
func (m *model) yankSelected() {
	if m.selected == nil {
		return
	}
	if err := clipboard.WriteAll(m.selected.Label); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("yanked %q", m.selected.Label)
}
