package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"restaurant/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewPool_Unreachable(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:            "127.0.0.1",
		Port:            1,
		User:            "postgres",
		Database:        "restaurant",
		MaxConnections:  1,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}

	pool, err := NewPool(context.Background(), cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "failed to reach order archive")
}

func TestNewPool_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("restaurant"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            portNum,
		User:            "postgres",
		Password:        "postgres",
		Database:        "restaurant",
		MaxConnections:  2,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}

	pool, err := NewPool(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close()

	assert.NoError(t, pool.Ping(ctx))
	assert.Equal(t, int32(2), pool.Config().MaxConns)
}
