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

// GraphHopper is the secondary provider: a GET with point params whose
// encoded points decode straight to (lat,lng).
type GraphHopper struct {
	BaseURL string
	Key     string
	Client  *http.Client
}

func NewGraphHopper(baseURL, key string) *GraphHopper {
	return &GraphHopper{BaseURL: strings.TrimSuffix(baseURL, "/"), Key: key, Client: newHTTPClient()}
}

func (g *GraphHopper) Name() string { return "graphhopper" }

type graphHopperResponse struct {
	Paths []struct {
		Distance float64 `json:"distance"`
		TimeMs   int64   `json:"time"`
		Points   string  `json:"points"`
	} `json:"paths"`
}

func (g *GraphHopper) Route(ctx context.Context, start, end Point) (Info, error) {
	params := url.Values{}
	params.Add("point", fmt.Sprintf("%f,%f", start.Lat, start.Lng))
	params.Add("point", fmt.Sprintf("%f,%f", end.Lat, end.Lng))
	params.Set("profile", "car")
	params.Set("points_encoded", "true")
	if g.Key != "" {
		params.Set("key", g.Key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/route?"+params.Encode(), nil)
	if err != nil {
		return Info{}, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return Info{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("graphhopper status %d", resp.StatusCode)
	}

	var body graphHopperResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Info{}, err
	}
	if len(body.Paths) == 0 {
		return Info{}, ErrNoRoute
	}

	p := body.Paths[0]
	path, err := geo.DecodePolyline(p.Points)
	if err != nil {
		return Info{}, err
	}
	return info(g.Name(), p.Distance, float64(p.TimeMs)/1000, path), nil
}
