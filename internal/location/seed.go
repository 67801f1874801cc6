package location

// Seeds is the offline fallback shown when the locations table cannot be
// read. Coordinates are inside the barangay so the map still centers
// somewhere sensible.
func Seeds() []Location {
	return []Location{
		{ID: "seed-hall", Name: "Barangay Hall", Type: TypeGovernment, Lat: 14.6043, Lng: 121.0312},
		{ID: "seed-school", Name: "Elementary School", Type: TypeSchool, Lat: 14.6051, Lng: 121.0329},
		{ID: "seed-health", Name: "Health Center", Type: TypeHealth, Lat: 14.6037, Lng: 121.0301},
		{ID: "seed-court", Name: "Covered Court", Type: TypeGymnasium, Lat: 14.6048, Lng: 121.0318},
	}
}
