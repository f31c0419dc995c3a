// Package ors is a thin client for the OpenRouteService HTTP API, covering
// the geocode search and directions endpoints this service consumes.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

const (
	// DefaultBaseURL is the public OpenRouteService endpoint.
	DefaultBaseURL = "https://api.openrouteservice.org"

	acceptHeader = "application/json, application/geo+json, application/gpx+xml, img/png; charset=utf-8"
)

// Client calls OpenRouteService with a per-request API credential. The base
// URL is configurable so tests can point it at a local server.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{},
		log:     log,
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves free text to the first candidate's coordinate pair and
// display label. Zero candidates is a domain lookup failure naming the text;
// a non-success upstream status is a transport failure carrying status and
// body.
func (c *Client) Geocode(ctx context.Context, text string) (*ports.GeocodedLocation, error) {
	endpoint := fmt.Sprintf("%s/geocode/search?api_key=%s&text=%s&size=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	body, err := c.do(req, "geocode")
	if err != nil {
		return nil, err
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("geocode decode: %w", err)
	}
	if len(parsed.Features) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, text)
	}

	feature := parsed.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return nil, fmt.Errorf("geocode decode: malformed coordinates for %q", text)
	}

	return &ports.GeocodedLocation{
		Coord: domain.Coordinate{
			Lon: feature.Geometry.Coordinates[0],
			Lat: feature.Geometry.Coordinates[1],
		},
		Name: feature.Properties.Label,
	}, nil
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route requests directions between start and end for the given profile and
// returns the first route's summary. Summary fields the provider omitted
// decode to zero. Zero routes is a domain lookup failure.
func (c *Client) Route(ctx context.Context, start, end domain.Coordinate, profile string) (*ports.RouteSummary, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, url.PathEscape(profile))

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{
			{start.Lon, start.Lat},
			{end.Lon, end.Lat},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("route request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("route request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	body, err := c.do(req, "route")
	if err != nil {
		return nil, err
	}

	var parsed directionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("route decode: %w", err)
	}
	if len(parsed.Routes) == 0 {
		return nil, domain.ErrNoRoute
	}

	return &ports.RouteSummary{
		DistanceMeters:  parsed.Routes[0].Summary.Distance,
		DurationSeconds: parsed.Routes[0].Summary.Duration,
	}, nil
}

// do executes the request and returns the response body, translating any
// non-success status into a domain.UpstreamError.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	started := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s response: %w", op, err)
	}

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("openrouteservice call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
