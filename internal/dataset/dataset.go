// Package dataset loads the restaurant table once at startup and serves it
// read-only for the rest of the process lifetime.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"tainan-restaurant/internal/model"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptyDataset is returned when a source holds no records.
	ErrEmptyDataset = errors.New("dataset contains no records")

	// ErrMissingField is returned when a record lacks one of the kept fields.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a kept field is not a string or null.
	ErrInvalidField = errors.New("field must be a string")
)

// Loader defines the interface for reading restaurant records from a source.
type Loader interface {
	// Load reads every record at location, projected to the kept fields.
	Load(ctx context.Context, location string) ([]model.Restaurant, error)
}

// Load reads the dataset through loader and builds the immutable table.
// Any failure is fatal for the caller; there is no partial table.
func Load(ctx context.Context, loader Loader, location string, logger zerolog.Logger) (*Table, error) {
	logger = logger.With().Str("component", "dataset").Logger()

	records, err := loader.Load(ctx, location)
	if err != nil {
		logger.Error().Err(err).Str("location", location).Msg("failed to load dataset")
		return nil, fmt.Errorf("failed to load dataset %s: %w", location, err)
	}

	if len(records) == 0 {
		logger.Error().Str("location", location).Msg("dataset is empty")
		return nil, fmt.Errorf("failed to load dataset %s: %w", location, ErrEmptyDataset)
	}

	table := NewTable(records)

	datasetRecords.Set(float64(table.Len()))
	datasetDistricts.Set(float64(len(table.Districts())))

	logger.Info().
		Str("location", location).
		Int("records", table.Len()).
		Int("districts", len(table.Districts())).
		Msg("dataset loaded")

	return table, nil
}
