package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "mirror.db", c.MirrorPath)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "tok", "-w", "3", "-m", "x.db", "index"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", AccessToken: "tok", RequestTimeout: 3 * time.Second, MirrorPath: "x.db"}},
		{name: "incorrect timeout", args: []string{"cmd", "-w", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr": "sync.example:443",
		"request_timeout":      "30s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "sync.example:443", cfg.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "mirror.db", cfg.MirrorPath, "absent keys keep their value")
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SYNC_CLIENT_TOKEN", "from-env")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "from-env", cfg.AccessToken)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
}
