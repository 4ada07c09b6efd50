package database

import (
	"context"
	"testing"

	"tainan-restaurant/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolFromConnString_InvalidConnString(t *testing.T) {
	pool, err := NewPoolFromConnString(context.Background(), "postgres://%zz", config.DatabaseConfig{}, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "failed to parse database config")
}
