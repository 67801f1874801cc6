package tracker

// State of a session's geolocation flow.
type State string

const (
	StateIdle      State = "idle"
	StateLocating  State = "locating"
	StateSelecting State = "selecting"
	StateLocated   State = "located"
	StateError     State = "error"
)

// Fix is a user position. Accuracy is nil for manually selected fixes:
// a map click has no sensor accuracy.
type Fix struct {
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Accuracy *float64 `json:"accuracy"`
}

// Options mirror the browser geolocation options the client should use
// when asked for a device fix.
type Options struct {
	EnableHighAccuracy bool `json:"enableHighAccuracy"`
	TimeoutMs          int  `json:"timeout"`
	MaximumAgeMs       int  `json:"maximumAge"`
}

// DeviceOptions returns the fixed request parameters: high accuracy, 10s
// timeout, 60s cache.
func DeviceOptions() Options {
	return Options{EnableHighAccuracy: true, TimeoutMs: 10000, MaximumAgeMs: 60000}
}

// The three standard geolocation error codes, plus anything else mapping
// to the unsupported-browser message.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// ErrorMessage maps a geolocation error code to its user-facing text.
func ErrorMessage(code int) string {
	switch code {
	case CodePermissionDenied:
		return "Location permission denied. Please allow location access and try again."
	case CodePositionUnavailable:
		return "Your location could not be determined. Check your device settings."
	case CodeTimeout:
		return "Locating you took too long. Please try again."
	default:
		return "Geolocation is not supported by this browser."
	}
}
