package mapview

// Popup clamping runs once per popup open: measure the popup's screen
// box, and when any edge falls outside the viewport translate it back on
// screen. Padding is responsive: narrow screens get less breathing room.
const (
	popupPadding       = 24.0
	popupPaddingNarrow = 8.0
	narrowScreenWidth  = 640
)

// Box is a popup's measured bounding box in screen pixels.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ClampPopup returns the (dx, dy) translation that pulls the box fully
// inside the viewport with padding. A box already inside yields (0, 0).
// Boxes larger than the padded viewport are pinned to the top-left edge.
func ClampPopup(box Box, v Viewport) (float64, float64) {
	pad := popupPadding
	if v.Width < narrowScreenWidth {
		pad = popupPaddingNarrow
	}

	minX, minY := pad, pad
	maxX := float64(v.Width) - pad - box.Width
	maxY := float64(v.Height) - pad - box.Height

	var dx, dy float64
	switch {
	case box.X < minX:
		dx = minX - box.X
	case box.X > maxX:
		dx = maxX - box.X
	}
	switch {
	case box.Y < minY:
		dy = minY - box.Y
	case box.Y > maxY:
		dy = maxY - box.Y
	}

	// oversized popup: prefer keeping the top-left visible
	if box.X+dx < minX {
		dx = minX - box.X
	}
	if box.Y+dy < minY {
		dy = minY - box.Y
	}
	return dx, dy
}
