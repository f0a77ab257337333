package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/syncserver/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-l duration   lock stale timeout (e.g., "30s")
//	-t duration   presigned URL lifetime
//	-o string     storage backend: s3 or minio
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-f string     default cloud folder name
//	-r string     Redis address for commit notifications
//	-log string   log backend: slog or zap
//
// os.Args is filtered with flagx.FilterArgs first so that flags owned by
// other components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-l", "-t", "-o", "-u", "-p", "-b", "-g", "-e", "-f", "-r", "-log", "-log-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.LockStaleTimeout, "l", config.LockStaleTimeout, "lock stale timeout")
	fs.DurationVar(&config.PresignTTL, "t", config.PresignTTL, "presigned URL lifetime")
	fs.StringVar(&config.StorageBackend, "o", config.StorageBackend, "storage backend (s3|minio)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.DefaultCloudFolderName, "f", config.DefaultCloudFolderName, "default cloud folder name")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.LogFormat, "log", config.LogFormat, "log format (slog|zap)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "minimum log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
