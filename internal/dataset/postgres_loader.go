package dataset

import (
	"context"
	"fmt"
	"strings"

	"tainan-restaurant/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// postgresLoader implements Loader by reading a PostgreSQL table once.
type postgresLoader struct {
	db     Querier
	logger zerolog.Logger
}

// NewPostgresLoader creates a loader that reads the restaurant columns of a
// table. The location passed to Load is the table name, optionally
// schema-qualified ("public.restaurants").
func NewPostgresLoader(db Querier, logger zerolog.Logger) Loader {
	return &postgresLoader{
		db:     db,
		logger: logger.With().Str("component", "dataset-postgres-loader").Logger(),
	}
}

// selectQuery builds the projection query for table.
func selectQuery(table string) string {
	columns := make([]string, len(model.RestaurantFields))
	for i, field := range model.RestaurantFields {
		columns[i] = pgx.Identifier{field}.Sanitize()
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY ctid",
		strings.Join(columns, ", "),
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
	)
}

// Load reads every row of table. NULL columns become empty strings.
func (l *postgresLoader) Load(ctx context.Context, table string) ([]model.Restaurant, error) {
	l.logger.Info().Str("table", table).Msg("loading dataset from postgres")

	rows, err := l.db.Query(ctx, selectQuery(table))
	if err != nil {
		l.logger.Error().Err(err).Str("table", table).Msg("failed to query dataset table")
		return nil, fmt.Errorf("failed to query dataset table %s: %w", table, err)
	}
	defer rows.Close()

	var records []model.Restaurant
	for rows.Next() {
		var name, district, summary, introduction, openTime, address *string
		if err := rows.Scan(&name, &district, &summary, &introduction, &openTime, &address); err != nil {
			l.logger.Error().Err(err).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}

		records = append(records, model.Restaurant{
			Name:         deref(name),
			District:     deref(district),
			Summary:      deref(summary),
			Introduction: deref(introduction),
			OpenTime:     deref(openTime),
			Address:      deref(address),
		})
	}

	if err := rows.Err(); err != nil {
		l.logger.Error().Err(err).Msg("error iterating restaurant rows")
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	l.logger.Info().
		Str("table", table).
		Int("records_loaded", len(records)).
		Msg("dataset table loaded successfully")

	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
