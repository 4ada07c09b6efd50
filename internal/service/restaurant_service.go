package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"tainan-restaurant/internal/dataset"
	"tainan-restaurant/internal/model"

	"github.com/rs/zerolog"
)

// restaurantService implements RestaurantService over an immutable table.
type restaurantService struct {
	table  *dataset.Table
	intN   func(n int) int
	logger zerolog.Logger
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(table *dataset.Table, logger zerolog.Logger) RestaurantService {
	return newRestaurantService(table, rand.IntN, logger)
}

func newRestaurantService(table *dataset.Table, intN func(n int) int, logger zerolog.Logger) *restaurantService {
	return &restaurantService{
		table:  table,
		intN:   intN,
		logger: logger.With().Str("service", "restaurant").Logger(),
	}
}

// RandomByDistrict samples count restaurants of district without replacement.
func (s *restaurantService) RandomByDistrict(ctx context.Context, district string, count int) ([]model.Restaurant, error) {
	if !s.table.HasDistrict(district) {
		queriesTotal.WithLabelValues("random_by_district", outcomeNotFound).Inc()
		s.logger.Debug().Str("district", district).Msg("district not found")
		return nil, model.ErrDistrictNotFound
	}

	candidates := s.table.ByDistrict(district)

	if count < 1 || count > len(candidates) {
		queriesTotal.WithLabelValues("random_by_district", outcomeInvalidCount).Inc()
		s.logger.Debug().
			Str("district", district).
			Int("requested", count).
			Int("available", len(candidates)).
			Msg("sample count out of range")
		return nil, fmt.Errorf("%w: requested %d, available %d", model.ErrInvalidSampleCount, count, len(candidates))
	}

	// Partial Fisher-Yates: the first count slots end up a uniform sample.
	for i := 0; i < count; i++ {
		j := i + s.intN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	queriesTotal.WithLabelValues("random_by_district", outcomeFound).Inc()
	s.logger.Debug().
		Str("district", district).
		Int("requested", count).
		Int("available", len(candidates)).
		Msg("sampled restaurants")

	return candidates[:count:count], nil
}

// GetByName returns every exact match for name in table order.
func (s *restaurantService) GetByName(ctx context.Context, name string) ([]model.Restaurant, error) {
	matches := s.table.ByName(name)
	if len(matches) == 0 {
		queriesTotal.WithLabelValues("get_by_name", outcomeNotFound).Inc()
		s.logger.Debug().Str("name", name).Msg("restaurant not found")
		return nil, model.ErrRestaurantNotFound
	}

	queriesTotal.WithLabelValues("get_by_name", outcomeFound).Inc()
	s.logger.Debug().Str("name", name).Int("count", len(matches)).Msg("retrieved restaurants by name")

	return matches, nil
}

// Districts lists the distinct districts in order of first appearance.
func (s *restaurantService) Districts(ctx context.Context) []string {
	return s.table.Districts()
}
