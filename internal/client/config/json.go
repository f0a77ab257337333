package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/syncserver/internal/flagx"
	"github.com/dmitrijs2005/syncserver/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	AccessToken        string         `json:"access_token"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	MirrorPath         string         `json:"mirror_path"`
}

// parseJson overlays Config with the keys present in the file named by -c or
// -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.AccessToken != "" {
		cfg.AccessToken = jc.AccessToken
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MirrorPath != "" {
		cfg.MirrorPath = jc.MirrorPath
	}
}
