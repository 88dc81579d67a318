package main

// Camera is the pan/zoom transform between world pixels and the
// screen. It is owned by the session and reset whenever the active
// document changes. Pan and scale are plain assignments, so an
// interrupted drag needs no rollback.
type Camera struct {
	PanX  float64
	PanY  float64
	Scale float64

	dragging bool
	dragCol  int
	dragRow  int
	dragPanX float64
	dragPanY float64
}

// Apply maps a world point to screen pixels.
func (c *Camera) Apply(x, y float64) (float64, float64) {
	return x*c.Scale + c.PanX, y*c.Scale + c.PanY
}

// StartDrag records the pointer cell and pan at the start of a drag,
// moving the camera from Idle to Dragging.
func (c *Camera) StartDrag(col, row int) {
	c.dragging = true
	c.dragCol = col
	c.dragRow = row
	c.dragPanX = c.PanX
	c.dragPanY = c.PanY
}

// Drag pans by the pointer delta since StartDrag. Ignored while Idle.
func (c *Camera) Drag(col, row int) {
	if !c.dragging {
		return
	}
	c.PanX = c.dragPanX + float64(col-c.dragCol)*cellWidth
	c.PanY = c.dragPanY + float64(row-c.dragRow)*cellHeight
}

// EndDrag returns the camera to Idle. Releasing mid-gesture simply
// stops further pan updates.
func (c *Camera) EndDrag() { c.dragging = false }

func (c *Camera) Dragging() bool { return c.dragging }

// ZoomAt multiplies the scale by factor, clamped to [min, max], while
// keeping the world point under the screen-pixel anchor fixed. At a
// clamp boundary the camera is left untouched.
func (c *Camera) ZoomAt(factor, anchorX, anchorY, min, max float64) {
	next := clampFloat(c.Scale*factor, min, max)
	if next == c.Scale {
		return
	}
	ratio := next / c.Scale
	c.PanX = anchorX - (anchorX-c.PanX)*ratio
	c.PanY = anchorY - (anchorY-c.PanY)*ratio
	c.Scale = next
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
