package event

import "github.com/russelescultura/sk-barangay-sub000/internal/location"

// ForLocation returns the events held at a location. The explicit
// location_id foreign key wins; events without one fall back to the legacy
// venue-name match, which is deliberately exact: case-sensitive and
// untrimmed, matching how venues were recorded before the key existed.
func ForLocation(loc location.Location, events []Event) []Event {
	var matched []Event
	for _, ev := range events {
		if ev.LocationID != "" {
			if ev.LocationID == loc.ID {
				matched = append(matched, ev)
			}
			continue
		}
		if ev.Venue == loc.Name {
			matched = append(matched, ev)
		}
	}
	return matched
}

// HasEvents reports whether a location should carry the event badge.
func HasEvents(loc location.Location, events []Event) bool {
	return len(ForLocation(loc, events)) > 0
}
