// Package notify tells other devices that a sharing group moved to a new
// master version, so they can refresh their index instead of polling.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Commit is the payload published after a successful commit.
type Commit struct {
	SharingGroupID    string `json:"sharingGroupId"`
	MasterVersion     int64  `json:"masterVersion"`
	DeviceID          string `json:"deviceId"`
	NumberTransferred int    `json:"numberTransferred"`
}

type Publisher interface {
	PublishCommit(ctx context.Context, c Commit) error
}

// RedisPublisher publishes commits on "<prefix>:<sharingGroupId>".
type RedisPublisher struct {
	client redis.Cmdable
	prefix string
}

func NewRedisPublisher(client redis.Cmdable, prefix string) *RedisPublisher {
	return &RedisPublisher{client: client, prefix: prefix}
}

// Channel returns the channel subscribers of a sharing group listen on.
func (p *RedisPublisher) Channel(sharingGroupID string) string {
	return fmt.Sprintf("%s:%s", p.prefix, sharingGroupID)
}

func (p *RedisPublisher) PublishCommit(ctx context.Context, c Commit) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.Channel(c.SharingGroupID), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Nop drops every notification.
type Nop struct{}

func (Nop) PublishCommit(context.Context, Commit) error { return nil }

// RedisConfig is the connection part of the server config.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
