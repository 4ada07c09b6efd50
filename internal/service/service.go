package service

import (
	"context"

	"tainan-restaurant/internal/model"
)

// DefaultSampleSize is the number of restaurants returned when the caller
// does not ask for a specific count.
const DefaultSampleSize = 5

// RestaurantService defines the read-only queries over the restaurant table.
type RestaurantService interface {
	// RandomByDistrict draws count distinct restaurants of district uniformly
	// at random. It returns model.ErrDistrictNotFound for an unknown district
	// and model.ErrInvalidSampleCount when count is not in 1..len(district).
	RandomByDistrict(ctx context.Context, district string, count int) ([]model.Restaurant, error)

	// GetByName returns every restaurant named exactly name, or
	// model.ErrRestaurantNotFound.
	GetByName(ctx context.Context, name string) ([]model.Restaurant, error)

	// Districts lists the distinct districts present in the table.
	Districts(ctx context.Context) []string
}
