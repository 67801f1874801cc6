package mapview

import "math"

// Viewport is the visible map: center, zoom, and pixel size. All screen
// geometry (trash-zone hit tests, popup clamping) is computed against it.
type Viewport struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      float64 `json:"zoom"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

const tileSize = 256

// worldPx converts lat/lng to absolute Web-Mercator pixels at the zoom.
func worldPx(lat, lng, zoom float64) (float64, float64) {
	scale := tileSize * math.Pow(2, zoom)
	x := (lng + 180) / 360 * scale

	latRad := lat * math.Pi / 180
	y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * scale
	return x, y
}

// Project converts a coordinate to screen pixels within the viewport.
// The viewport center lands at (Width/2, Height/2).
func (v Viewport) Project(lat, lng float64) (float64, float64) {
	px, py := worldPx(lat, lng, v.Zoom)
	cx, cy := worldPx(v.CenterLat, v.CenterLng, v.Zoom)
	return px - cx + float64(v.Width)/2, py - cy + float64(v.Height)/2
}

// Unproject converts screen pixels back to a coordinate.
func (v Viewport) Unproject(x, y float64) (float64, float64) {
	cx, cy := worldPx(v.CenterLat, v.CenterLng, v.Zoom)
	wx := x + cx - float64(v.Width)/2
	wy := y + cy - float64(v.Height)/2

	scale := tileSize * math.Pow(2, v.Zoom)
	lng := wx/scale*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*wy/scale))) * 180 / math.Pi
	return lat, lng
}

// OnScreen reports whether the projected point falls inside the viewport.
func (v Viewport) OnScreen(lat, lng float64) bool {
	x, y := v.Project(lat, lng)
	return x >= 0 && x <= float64(v.Width) && y >= 0 && y <= float64(v.Height)
}
