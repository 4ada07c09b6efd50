//go:build integration

package dataset

import (
	"context"
	"testing"
	"time"

	"tainan-restaurant/internal/config"
	"tainan-restaurant/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const seedSQL = `
	CREATE TABLE restaurants (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		district TEXT NOT NULL,
		summary TEXT,
		introduction TEXT,
		open_time TEXT,
		address TEXT,
		tel TEXT
	);

	INSERT INTO restaurants (name, district, summary, introduction, open_time, address, tel) VALUES
		('阿堂鹹粥', '中西區', '虱目魚鹹粥', '台南早餐老店', '05:00-12:30', '臺南市中西區西門路一段728號', '06-2231744'),
		('阿村牛肉湯', '南區', '溫體牛肉湯', '清晨營業的牛肉湯', NULL, '臺南市南區保安路41號', NULL);
`

// setupTestPool starts a PostgreSQL container seeded with a restaurants table.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Seed through a plain pool; the service pool is read-only.
	seedPool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create seed pool: %v", err)
	}
	if _, err := seedPool.Exec(ctx, seedSQL); err != nil {
		t.Fatalf("failed to seed restaurants: %v", err)
	}
	seedPool.Close()

	pool, err := database.NewPoolFromConnString(ctx, connStr, config.DatabaseConfig{
		MaxConnections: 2,
		MinConnections: 1,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return pool
}

func TestPostgresLoader_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestPool(t)
	loader := NewPostgresLoader(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Load projects the restaurant columns", func(t *testing.T) {
		records, err := loader.Load(ctx, "restaurants")
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "阿堂鹹粥", records[0].Name)
		assert.Equal(t, "中西區", records[0].District)
		assert.Equal(t, "05:00-12:30", records[0].OpenTime)
		assert.Equal(t, "", records[1].OpenTime, "NULL becomes empty string")
	})

	t.Run("Load builds a table", func(t *testing.T) {
		table, err := Load(ctx, loader, "public.restaurants", zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, []string{"中西區", "南區"}, table.Districts())
	})

	t.Run("Load fails for a missing table", func(t *testing.T) {
		records, err := loader.Load(ctx, "no_such_table")
		require.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("Pool refuses writes", func(t *testing.T) {
		_, err := pool.Exec(ctx, "DELETE FROM restaurants")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})
}
