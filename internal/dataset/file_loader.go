package dataset

import (
	"context"
	"fmt"
	"os"

	"tainan-restaurant/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for a JSON file on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based dataset loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "dataset-file-loader").Logger(),
	}
}

// Load reads a JSON array of restaurant objects from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading dataset file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open dataset file")
		return nil, fmt.Errorf("failed to open dataset file %s: %w", filePath, err)
	}
	defer file.Close()

	records, err := decodeRecords(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode dataset file")
		return nil, fmt.Errorf("failed to decode dataset file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("records_loaded", len(records)).
		Msg("dataset file loaded successfully")

	return records, nil
}
