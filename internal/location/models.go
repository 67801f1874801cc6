package location

import "time"

// Location is a persisted point of interest shown on the barangay map.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Lat         float64   `json:"latitude"`
	Lng         float64   `json:"longitude"`
	Type        string    `json:"type"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Categories the map renders with a dedicated icon. Anything else falls
// back to the generic marker but is rejected at creation time.
const (
	TypeSchool      = "SCHOOL"
	TypeGovernment  = "GOVERNMENT"
	TypeHealth      = "HEALTH"
	TypeCommercial  = "COMMERCIAL"
	TypeSports      = "SPORTS"
	TypeReligious   = "RELIGIOUS"
	TypeEmergency   = "EMERGENCY"
	TypeResidential = "RESIDENTIAL"
	TypeRecreation  = "RECREATION"
	TypeGymnasium   = "GYMNASIUM"
)

var knownTypes = map[string]struct{}{
	TypeSchool:      {},
	TypeGovernment:  {},
	TypeHealth:      {},
	TypeCommercial:  {},
	TypeSports:      {},
	TypeReligious:   {},
	TypeEmergency:   {},
	TypeResidential: {},
	TypeRecreation:  {},
	TypeGymnasium:   {},
}

// KnownType reports whether t is one of the supported categories.
func KnownType(t string) bool {
	_, ok := knownTypes[t]
	return ok
}

// CreateInput is the payload for adding a location through the map.
type CreateInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"latitude"`
	Lng         float64 `json:"longitude"`
	Type        string  `json:"type"`
	Image       string  `json:"image"`
}
