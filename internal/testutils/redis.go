// Package testutils provides shared test fixtures and Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-importer/internal/redis"
)

// NewRedis starts an in-memory Redis server and a client connected to it.
// The server lets a test seed or inspect keys directly. Both are closed when
// the test finishes.
func NewRedis(t testing.TB) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start(), "failed to start miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}
