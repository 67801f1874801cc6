package route

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/russelescultura/sk-barangay-sub000/internal/shared/geo"
)

// ErrNoRoute is returned by a provider that answered but found no path.
var ErrNoRoute = errors.New("no route found")

// Provider computes a driving route between two points. Providers are
// optional and independently faultable; the planner tries them in order.
type Provider interface {
	Name() string
	Route(ctx context.Context, start, end Point) (Info, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// info assembles an Info from raw meters and seconds, applying the shared
// derivations: km to one decimal, seconds to rounded minutes, walking as
// exactly three times the driving figure.
func info(provider string, meters, seconds float64, path [][2]float64) Info {
	drivingMin := int(math.Round(seconds / 60))
	return Info{
		DistanceKm: geo.RoundKm(meters / 1000),
		DrivingMin: drivingMin,
		WalkingMin: 3 * drivingMin,
		Path:       path,
		Provider:   provider,
	}
}
