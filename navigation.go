package main

// Keyboard navigation over the active tree. The selection is a cursor
// into the immutable placed tree; moving it never changes the camera
// unless the user centers explicitly.

func (m *model) selectParent() {
	if m.selected != nil && m.selected.Parent != nil {
		m.selected = m.selected.Parent
	}
}

func (m *model) selectFirstChild() {
	if m.selected != nil && len(m.selected.Children) > 0 {
		m.selected = m.selected.Children[0]
	}
}

// selectSibling moves the selection delta positions among its
// siblings, stopping at either end.
func (m *model) selectSibling(delta int) {
	sel := m.selected
	if sel == nil || sel.Parent == nil {
		return
	}
	siblings := sel.Parent.Children
	for i, s := range siblings {
		if s == sel {
			j := i + delta
			if j >= 0 && j < len(siblings) {
				m.selected = siblings[j]
			}
			return
		}
	}
}

// centerOnSelected pans so the selected node sits at the middle of the
// canvas, keeping the current zoom.
func (m *model) centerOnSelected() {
	if m.selected == nil {
		return
	}
	widthPx := float64(m.width) * cellWidth
	heightPx := float64(m.canvasHeight()) * cellHeight
	m.camera.PanX = widthPx/2 - m.selected.X*m.camera.Scale
	m.camera.PanY = heightPx/2 - m.selected.Y*m.camera.Scale
}
