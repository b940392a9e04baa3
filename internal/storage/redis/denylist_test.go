package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/redis -v -count=1

func startRedis(t *testing.T) string {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestIntegration_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, startRedis(t), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	ttl, err := d.rdb.TTL(ctx, defaultPrefix+"jti-1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 50*time.Second)
}

func TestIntegration_RevokeExpiredIsNoop(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, startRedis(t), "test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	require.NoError(t, d.Revoke(ctx, "old", 0))

	revoked, err := d.IsRevoked(ctx, "old")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestIntegration_KeyExpires(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, startRedis(t), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	require.NoError(t, d.Revoke(ctx, "short", time.Second))
	require.Eventually(t, func() bool {
		revoked, err := d.IsRevoked(ctx, "short")
		return err == nil && !revoked
	}, 5*time.Second, 200*time.Millisecond)
}

func TestNew_BadURL(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), "not-a-url", "")
	require.Error(t, err)
}
