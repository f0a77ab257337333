package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/server/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore uses the native minio-go client. The region is pinned so that
// presigning never needs a bucket-location round trip.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

func NewMinIOStore(cfg *config.Config) (*MinIOStore, error) {
	client, err := minio.New(minioEndpoint(cfg.S3BaseEndpoint), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3RootUser, cfg.S3RootPassword, ""),
		Secure: cfg.MinIOUseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &MinIOStore{client: client, bucket: cfg.S3Bucket}, nil
}

// minioEndpoint strips scheme and path: minio-go wants a bare host[:port].
func minioEndpoint(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return u.Host
	}
	return strings.TrimSuffix(raw, "/")
}

// EnsureBucket creates the bucket unless it already exists.
func (m *MinIOStore) EnsureBucket(ctx context.Context) error {
	err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	if err == nil {
		return nil
	}
	exists, errExists := m.client.BucketExists(ctx, m.bucket)
	if errExists == nil && exists {
		return nil
	}
	return fmt.Errorf("create bucket %q: %w", m.bucket, err)
}

func (m *MinIOStore) PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := m.client.PresignedPutObject(ctx, m.bucket, key, ttl)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (m *MinIOStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (m *MinIOStore) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
