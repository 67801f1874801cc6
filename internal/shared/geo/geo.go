package geo

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// lat/lng points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RoundKm rounds a distance to one decimal place for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// SynthesizePath builds an approximate path between two points: the given
// number of intermediate points linearly interpolated, with a small
// sinusoidal lateral offset so the line does not read as a measured route.
// The result includes both endpoints.
func SynthesizePath(startLat, startLng, endLat, endLng float64, intermediate int) [][2]float64 {
	path := make([][2]float64, 0, intermediate+2)
	path = append(path, [2]float64{startLat, startLng})
	for i := 1; i <= intermediate; i++ {
		t := float64(i) / float64(intermediate+1)
		offset := math.Sin(t*math.Pi) * 0.0001
		path = append(path, [2]float64{
			startLat + (endLat-startLat)*t + offset,
			startLng + (endLng-startLng)*t + offset,
		})
	}
	path = append(path, [2]float64{endLat, endLng})
	return path
}
