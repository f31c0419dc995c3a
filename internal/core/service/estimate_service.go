package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

// DefaultProfile is the travel profile used when a request does not name one.
const DefaultProfile = "driving-car"

// EstimateService composes the geocoder (twice) and the route provider
// (once) to estimate travel time and distance between two locations.
type EstimateService struct {
	shipments ports.ShipmentService
	geocoder  ports.Geocoder
	router    ports.RouteProvider
	cache     ports.GeocodeCache // optional, may be nil
	log       zerolog.Logger
}

func NewEstimateService(
	shipments ports.ShipmentService,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
	cache ports.GeocodeCache,
	log zerolog.Logger,
) *EstimateService {
	return &EstimateService{
		shipments: shipments,
		geocoder:  geocoder,
		router:    router,
		cache:     cache,
		log:       log,
	}
}

// Estimate answers an ad hoc estimate between two free-text locations.
// The three upstream calls run strictly in sequence; the first failure
// propagates immediately with no partial result.
func (s *EstimateService) Estimate(ctx context.Context, input ports.EstimateInput) (*ports.EstimateResult, error) {
	profile := input.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	start, err := s.resolve(ctx, input.StartLocation)
	if err != nil {
		return nil, err
	}
	end, err := s.resolve(ctx, input.EndLocation)
	if err != nil {
		return nil, err
	}

	summary, err := s.router.Route(ctx, start.Coord, end.Coord, profile)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("start", start.Name).
		Str("end", end.Name).
		Str("profile", profile).
		Float64("duration_s", summary.DurationSeconds).
		Float64("distance_m", summary.DistanceMeters).
		Msg("estimate computed")

	return &ports.EstimateResult{
		StartName:         start.Name,
		EndName:           end.Name,
		DurationSeconds:   summary.DurationSeconds,
		DistanceMeters:    summary.DistanceMeters,
		DurationFormatted: FormatDuration(summary.DurationSeconds),
		DistanceFormatted: FormatDistance(summary.DistanceMeters),
		Profile:           profile,
	}, nil
}

// EstimateShipment estimates between a stored shipment's origin and
// destination. A shipment lacking either location fails before any upstream
// call is made.
func (s *EstimateService) EstimateShipment(ctx context.Context, id, profile string) (*ports.EstimateResult, error) {
	shipment, err := s.shipments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment.InitLoc == "" || shipment.FinalLoc == "" {
		return nil, domain.ErrMissingLocations
	}

	result, err := s.Estimate(ctx, ports.EstimateInput{
		StartLocation: shipment.InitLoc,
		EndLocation:   shipment.FinalLoc,
		Profile:       profile,
	})
	if err != nil {
		return nil, err
	}

	result.ShipmentID = shipment.ID
	return result, nil
}

// resolve geocodes a location, going through the cache when one is wired.
// Cache failures degrade to a plain geocoder call.
func (s *EstimateService) resolve(ctx context.Context, text string) (*ports.GeocodedLocation, error) {
	if s.cache != nil {
		if loc, ok := s.cache.Get(ctx, text); ok {
			s.log.Debug().Str("text", text).Msg("geocode cache hit")
			return loc, nil
		}
	}

	loc, err := s.geocoder.Geocode(ctx, text)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, text, loc)
	}
	return loc, nil
}

// FormatDuration renders seconds as "<H>h <M>m" from one hour up, and
// "<M> min" below. Seconds are floored, minutes truncated; negative and NaN
// inputs clamp to zero.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatDistance renders meters as kilometers with two decimal digits.
func FormatDistance(meters float64) string {
	if math.IsNaN(meters) {
		meters = 0
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}
