package geo

import "errors"

var errTruncatedPolyline = errors.New("truncated polyline")

// DecodePolyline decodes a delta+zigzag encoded polyline (1e-5 scale) into
// (lat,lng) pairs, the format returned by Google-style directions APIs.
func DecodePolyline(encoded string) ([][2]float64, error) {
	var points [][2]float64
	var lat, lng int64

	i := 0
	for i < len(encoded) {
		dLat, n, err := decodeVarint(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		dLng, n, err := decodeVarint(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n

		lat += dLat
		lng += dLng
		points = append(points, [2]float64{float64(lat) / 1e5, float64(lng) / 1e5})
	}
	return points, nil
}

func decodeVarint(s string) (int64, int, error) {
	var result int64
	var shift uint

	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		result |= (b & 0x1f) << shift
		if b < 0x20 {
			// zigzag: sign lives in the lowest bit
			if result&1 != 0 {
				return ^(result >> 1), i + 1, nil
			}
			return result >> 1, i + 1, nil
		}
		shift += 5
	}
	return 0, 0, errTruncatedPolyline
}
