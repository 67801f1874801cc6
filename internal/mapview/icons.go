package mapview

import "github.com/russelescultura/sk-barangay-sub000/internal/location"

// Icon describes how a marker renders. Badge is the pulsing overlay shown
// when events are held at the location.
type Icon struct {
	Name  string `json:"name"`
	Badge bool   `json:"badge"`
}

const genericIcon = "marker"

var iconsByType = map[string]string{
	location.TypeSchool:      "school",
	location.TypeGovernment:  "government",
	location.TypeHealth:      "health",
	location.TypeCommercial:  "commercial",
	location.TypeSports:      "sports",
	location.TypeReligious:   "religious",
	location.TypeEmergency:   "emergency",
	location.TypeResidential: "residential",
	location.TypeRecreation:  "recreation",
	location.TypeGymnasium:   "gymnasium",
}

// IconFor picks the marker icon for a location type. Unknown types get
// the generic marker, never an error.
func IconFor(locType string, hasEvents bool) Icon {
	name, ok := iconsByType[locType]
	if !ok {
		name = genericIcon
	}
	return Icon{Name: name, Badge: hasEvents}
}
