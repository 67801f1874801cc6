package youth

// Profile is a youth member record. Only profiles carrying both
// coordinates get a marker; they all render identically regardless of the
// individual.
type Profile struct {
	ID        string   `json:"id"`
	FullName  string   `json:"fullName"`
	Age       int      `json:"age"`
	Sex       string   `json:"sex"`
	Status    string   `json:"status"`
	Committee string   `json:"committee"`
	Street    string   `json:"street"`
	Purok     string   `json:"purok"`
	Lat       *float64 `json:"latitude"`
	Lng       *float64 `json:"longitude"`
}

// Plottable reports whether the profile can be placed on the map.
func (p Profile) Plottable() bool {
	return p.Lat != nil && p.Lng != nil
}
