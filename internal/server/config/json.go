package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/syncserver/internal/flagx"
	"github.com/dmitrijs2005/syncserver/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "30s"-style strings or integer nanoseconds. Pointers distinguish
// an explicit false from an absent key.
type JsonConfig struct {
	EndpointAddrGRPC       string         `json:"endpoint_addr_grpc"`
	DatabaseDSN            string         `json:"database_dsn"`
	SecretKey              string         `json:"secret_key"`
	LockStaleTimeout       timex.Duration `json:"lock_stale_timeout"`
	PresignTTL             timex.Duration `json:"presign_ttl"`
	PurgeOnCommit          *bool          `json:"purge_on_commit"`
	DefaultCloudFolderName string         `json:"default_cloud_folder_name"`
	StorageBackend         string         `json:"storage_backend"`
	S3RootUser             string         `json:"s3_root_user"`
	S3RootPassword         string         `json:"s3_root_password"`
	S3Bucket               string         `json:"s3_bucket"`
	S3Region               string         `json:"s3_region"`
	S3BaseEndpoint         string         `json:"s3_base_endpoint"`
	MinIOUseSSL            *bool          `json:"minio_use_ssl"`
	RedisAddr              string         `json:"redis_addr"`
	RedisPassword          string         `json:"redis_password"`
	RedisDB                *int           `json:"redis_db"`
	NotifyChannelPrefix    string         `json:"notify_channel_prefix"`
	LogFormat              string         `json:"log_format"`
	LogLevel               string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson loads the file named by -c/-config, if any, and copies every key
// it sets into config. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.LockStaleTimeout.Duration != 0 {
		config.LockStaleTimeout = c.LockStaleTimeout.Duration
	}
	if c.PresignTTL.Duration != 0 {
		config.PresignTTL = c.PresignTTL.Duration
	}
	if c.PurgeOnCommit != nil {
		config.PurgeOnCommit = *c.PurgeOnCommit
	}
	setString(&config.DefaultCloudFolderName, c.DefaultCloudFolderName)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.MinIOUseSSL != nil {
		config.MinIOUseSSL = *c.MinIOUseSSL
	}
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	setString(&config.NotifyChannelPrefix, c.NotifyChannelPrefix)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogLevel, c.LogLevel)
}
