// Command seed_postgres copies the JSON dataset into a PostgreSQL table so
// the API can be started with DATASET_SOURCE=postgres.
//
// It reads the same DB_* and DATASET_* environment variables as the server.
package main

import (
	"context"
	"fmt"
	"os"

	"tainan-restaurant/internal/config"
	"tainan-restaurant/internal/dataset"

	"github.com/jackc/pgx/v5"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	records, err := dataset.NewFileLoader(logger).Load(ctx, cfg.Dataset.Path)
	if err != nil {
		return err
	}

	// Plain connection: the server's pool is read-only.
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	table := pgx.Identifier{cfg.Dataset.Table}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		district TEXT NOT NULL,
		summary TEXT,
		introduction TEXT,
		open_time TEXT,
		address TEXT
	)`, table.Sanitize())

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	if _, err := tx.Exec(ctx, "TRUNCATE "+table.Sanitize()); err != nil {
		return fmt.Errorf("failed to truncate table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, table,
		[]string{"name", "district", "summary", "introduction", "open_time", "address"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.Name, r.District, r.Summary, r.Introduction, r.OpenTime, r.Address}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy restaurants: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Info().
		Str("table", cfg.Dataset.Table).
		Int64("rows", copied).
		Msg("dataset copied to PostgreSQL")
	return nil
}
