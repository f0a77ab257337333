package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	t.Setenv("SYNC_DATABASE_DSN", "postgres://env")
	t.Setenv("SYNC_LOCK_STALE_TIMEOUT", "2m")
	t.Setenv("SYNC_PURGE_ON_COMMIT", "false")
	t.Setenv("SYNC_REDIS_DB", "3")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, 2*time.Minute, c.LockStaleTimeout)
	assert.False(t, c.PurgeOnCommit)
	assert.Equal(t, 3, c.RedisDB)

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "syncserver", c.S3Bucket)
}

func TestParseEnv_MalformedPanics(t *testing.T) {
	t.Setenv("SYNC_LOCK_STALE_TIMEOUT", "soon")

	var c Config
	require.Panics(t, func() { parseEnv(&c) })
}
