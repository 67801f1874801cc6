package mapview

import (
	"context"

	"github.com/russelescultura/sk-barangay-sub000/internal/event"
	"github.com/russelescultura/sk-barangay-sub000/internal/location"
	"github.com/russelescultura/sk-barangay-sub000/internal/youth"
)

// Marker is a location pin ready to render.
type Marker struct {
	Location  location.Location `json:"location"`
	Icon      Icon              `json:"icon"`
	Events    []event.Event     `json:"events,omitempty"`
	Draggable bool              `json:"draggable"`
	Dirty     bool              `json:"dirty,omitempty"`
}

// YouthMarker is a youth residence pin; all render identically.
type YouthMarker struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Icon Icon    `json:"icon"`
}

// MarkerSet is everything the map draws. The three source loads are
// independent; a failure in one leaves the others intact so markers
// render progressively.
type MarkerSet struct {
	Markers  []Marker      `json:"markers"`
	Youth    []YouthMarker `json:"youth"`
	Degraded bool          `json:"degraded"`
}

// Markers assembles the render model for a session.
func (m *Manager) Markers(ctx context.Context, s *Session) MarkerSet {
	locations, degraded := m.locations.List(ctx)

	// events and youth are optional overlays: errors drop the overlay,
	// not the markers
	events, err := m.events.List(ctx)
	if err != nil {
		events = nil
	}

	editMode := s.EditMode()
	set := MarkerSet{Degraded: degraded, Markers: make([]Marker, 0, len(locations))}
	for _, loc := range locations {
		held := event.ForLocation(loc, events)
		set.Markers = append(set.Markers, Marker{
			Location:  loc,
			Icon:      IconFor(loc.Type, len(held) > 0),
			Events:    held,
			Draggable: editMode,
			Dirty:     s.Dirty(loc.ID),
		})
	}

	profiles, err := m.youth.List(ctx)
	if err != nil {
		return set
	}
	for _, p := range youth.Plottable(profiles) {
		set.Youth = append(set.Youth, YouthMarker{Lat: *p.Lat, Lng: *p.Lng, Icon: IconFor("", false)})
	}
	return set
}
