// Package config loads runtime configuration for the syncserver command-line
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. SYNC_CLIENT_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-t string   access token
//	-w int      per-request timeout (seconds)
//	-m string   path of the local index mirror database
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "10s",
//	  "mirror_path": "mirror.db"
//	}
package config
