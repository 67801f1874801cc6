package mapview

// The trash zone is a fixed-size drop target anchored in the bottom-right
// screen corner, shown only while a marker drag is active in edit mode.
const (
	trashZoneSize  = 96
	trashZoneInset = 16
)

// TrashZone is the zone's screen rectangle for the viewport.
type TrashZone struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func trashZoneFor(v Viewport) TrashZone {
	return TrashZone{
		X:      float64(v.Width) - trashZoneSize - trashZoneInset,
		Y:      float64(v.Height) - trashZoneSize - trashZoneInset,
		Width:  trashZoneSize,
		Height: trashZoneSize,
	}
}

// Contains reports whether a screen point falls inside the zone.
func (z TrashZone) Contains(x, y float64) bool {
	return x >= z.X && x <= z.X+z.Width && y >= z.Y && y <= z.Y+z.Height
}
