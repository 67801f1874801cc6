package mapview

import "math"

// The map viewport is one shared mutable resource that several features
// command (centering on the user, fitting a route, popup panning). All
// writes go through these sequenced methods rather than a raw handle.

const (
	minZoom = 3
	maxZoom = 18
)

// CenterOn points the session's viewport at a coordinate. A zoom of 0
// keeps the current zoom.
func (s *Session) CenterOn(lat, lng, zoom float64) Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.CenterLat = lat
	s.viewport.CenterLng = lng
	if zoom != 0 {
		s.viewport.Zoom = clampZoom(zoom)
	}
	return s.viewport
}

// FitBounds centers the viewport on a bounding box and picks the largest
// zoom at which the whole box stays visible.
func (s *Session) FitBounds(minLat, minLng, maxLat, maxLng float64) Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport.CenterLat = (minLat + maxLat) / 2
	s.viewport.CenterLng = (minLng + maxLng) / 2

	latSpan := math.Abs(maxLat - minLat)
	lngSpan := math.Abs(maxLng - minLng)
	span := math.Max(latSpan, lngSpan)
	if span == 0 {
		s.viewport.Zoom = maxZoom
		return s.viewport
	}
	s.viewport.Zoom = clampZoom(math.Floor(math.Log2(360 / span)))
	return s.viewport
}

// SetViewportSize records the client's pixel dimensions.
func (s *Session) SetViewportSize(width, height int) Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Width = width
	s.viewport.Height = height
	return s.viewport
}

// Viewport returns a copy of the current viewport.
func (s *Session) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

func clampZoom(zoom float64) float64 {
	return math.Min(maxZoom, math.Max(minZoom, zoom))
}
