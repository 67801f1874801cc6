package route

import (
	"context"
	"log"
	"math"

	"github.com/russelescultura/sk-barangay-sub000/internal/shared/geo"
)

// assumed average speed when no provider answers: 24 km/h, i.e. 2.5
// minutes per kilometer.
const fallbackMinPerKm = 2.5

const synthesizedPoints = 15

// Planner walks the provider chain and always produces a result: route
// unavailability is degraded quality, not failure.
type Planner struct {
	providers []Provider
	cache     *Cache
}

func NewPlanner(cache *Cache, providers ...Provider) *Planner {
	return &Planner{providers: providers, cache: cache}
}

// Plan never returns an error to the caller. Each provider is attempted
// in order; when all fail the local estimate is returned, flagged as
// approximate so it is never presented as a real road path.
func (p *Planner) Plan(ctx context.Context, start, end Point) Info {
	if p.cache != nil {
		if cached, ok := p.cache.Get(ctx, start, end); ok {
			return cached
		}
	}

	for _, provider := range p.providers {
		result, err := provider.Route(ctx, start, end)
		if err != nil {
			log.Printf("route provider %s failed: %v", provider.Name(), err)
			continue
		}
		if p.cache != nil {
			p.cache.Put(ctx, start, end, result)
		}
		return result
	}

	return Estimate(start, end)
}

// Estimate is the terminal fallback: great-circle distance, a 24 km/h
// driving assumption, and a synthesized path that only looks road-like.
func Estimate(start, end Point) Info {
	km := geo.HaversineKm(start.Lat, start.Lng, end.Lat, end.Lng)
	drivingMin := int(math.Round(km * fallbackMinPerKm))
	return Info{
		DistanceKm:  geo.RoundKm(km),
		DrivingMin:  drivingMin,
		WalkingMin:  3 * drivingMin,
		Path:        geo.SynthesizePath(start.Lat, start.Lng, end.Lat, end.Lng, synthesizedPoints),
		Approximate: true,
		Provider:    "estimate",
	}
}
