package route

// Point is a (lat,lng) pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Info is the result of a route computation. WalkingMin is always derived
// as three times DrivingMin; it is never computed independently.
type Info struct {
	DistanceKm  float64      `json:"distance_km"`
	DrivingMin  int          `json:"driving_min"`
	WalkingMin  int          `json:"walking_min"`
	Path        [][2]float64 `json:"path"`
	Approximate bool         `json:"approximate"`
	Provider    string       `json:"provider"`
}
