// Package storage hands out access to the cloud object store. File bytes
// never pass through the server: clients PUT and GET through presigned URLs,
// and the server itself only deletes objects no index row references anymore.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/server/config"
)

type ObjectStore interface {
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
	switch cfg.StorageBackend {
	case config.StorageS3, "":
		return NewS3Store(ctx, cfg)
	case config.StorageMinIO:
		return NewMinIOStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
