package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/russelescultura/sk-barangay-sub000/internal/shared/geo"
)

// Directions is the tertiary provider, a Google-Directions-style API
// keyed by credential that returns an overview polyline needing the
// delta+zigzag decode.
type Directions struct {
	BaseURL string
	Key     string
	Client  *http.Client
}

func NewDirections(baseURL, key string) *Directions {
	return &Directions{BaseURL: strings.TrimSuffix(baseURL, "/"), Key: key, Client: newHTTPClient()}
}

func (d *Directions) Name() string { return "directions" }

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

func (d *Directions) Route(ctx context.Context, start, end Point) (Info, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", start.Lat, start.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", end.Lat, end.Lng))
	params.Set("mode", "driving")
	params.Set("key", d.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+"/directions/json?"+params.Encode(), nil)
	if err != nil {
		return Info{}, err
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return Info{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("directions status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Info{}, err
	}
	if body.Status != "OK" || len(body.Routes) == 0 {
		return Info{}, ErrNoRoute
	}

	r := body.Routes[0]
	var meters, seconds float64
	for _, leg := range r.Legs {
		meters += leg.Distance.Value
		seconds += leg.Duration.Value
	}
	path, err := geo.DecodePolyline(r.OverviewPolyline.Points)
	if err != nil {
		return Info{}, err
	}
	return info(d.Name(), meters, seconds, path), nil
}
