package config

import "time"

// Config holds runtime settings for the client.
type Config struct {
	ServerEndpointAddr string        `env:"SYNC_CLIENT_ADDR"`
	AccessToken        string        `env:"SYNC_CLIENT_TOKEN"`
	RequestTimeout     time.Duration `env:"SYNC_CLIENT_TIMEOUT"`
	MirrorPath         string        `env:"SYNC_CLIENT_MIRROR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.MirrorPath = "mirror.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
