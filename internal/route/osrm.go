package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// OSRM is the primary road-routing provider: driving profile, full
// GeoJSON geometry. OSRM emits (lng,lat) pairs which must be swapped for
// display.
type OSRM struct {
	BaseURL string
	Client  *http.Client
}

func NewOSRM(baseURL string) *OSRM {
	return &OSRM{BaseURL: strings.TrimSuffix(baseURL, "/"), Client: newHTTPClient()}
}

func (o *OSRM) Name() string { return "osrm" }

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRM) Route(ctx context.Context, start, end Point) (Info, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		o.BaseURL, start.Lng, start.Lat, end.Lng, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Info{}, err
	}
	resp, err := o.Client.Do(req)
	if err != nil {
		return Info{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("osrm status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Info{}, err
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return Info{}, ErrNoRoute
	}

	r := body.Routes[0]
	path := make([][2]float64, len(r.Geometry.Coordinates))
	for i, c := range r.Geometry.Coordinates {
		path[i] = [2]float64{c[1], c[0]} // (lng,lat) -> (lat,lng)
	}
	return info(o.Name(), r.Distance, r.Duration, path), nil
}
