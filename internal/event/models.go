package event

import "time"

// Event is read-only from the map's point of view: it only influences
// which markers carry the event badge.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DateTime        time.Time `json:"dateTime"`
	Venue           string    `json:"venue"`
	LocationID      string    `json:"locationId,omitempty"`
	Status          string    `json:"status"`
	MaxParticipants int       `json:"maxParticipants"`
}

const (
	StatusPlanned   = "PLANNED"
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)
