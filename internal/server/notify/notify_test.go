package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_PublishCommit_Mock(t *testing.T) {
	client, mock := redismock.NewClientMock()
	p := NewRedisPublisher(client, "syncserver:commits")

	c := Commit{SharingGroupID: "g1", MasterVersion: 4, DeviceID: "d1", NumberTransferred: 2}
	payload, err := json.Marshal(c)
	require.NoError(t, err)

	mock.ExpectPublish("syncserver:commits:g1", payload).SetVal(1)
	require.NoError(t, p.PublishCommit(context.Background(), c))

	mock.ExpectPublish("syncserver:commits:g1", payload).SetErr(errors.New("conn refused"))
	err = p.PublishCommit(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPublisher_SubscriberReceives(t *testing.T) {
	srv := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	p := NewRedisPublisher(client, "commits")
	ctx := context.Background()

	sub := client.Subscribe(ctx, p.Channel("g1"))
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, p.PublishCommit(ctx, Commit{SharingGroupID: "g1", MasterVersion: 1, DeviceID: "d1", NumberTransferred: 1}))

	select {
	case msg := <-sub.Channel():
		var got Commit
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, int64(1), got.MasterVersion)
		assert.Equal(t, "d1", got.DeviceID)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestNewRedisClient_Options(t *testing.T) {
	c := NewRedisClient(RedisConfig{Addr: "redis:6380", Password: "secret", DB: 1})
	assert.Equal(t, "redis:6380", c.Options().Addr)
	assert.Equal(t, "secret", c.Options().Password)
	assert.Equal(t, 1, c.Options().DB)
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.PublishCommit(context.Background(), Commit{}))
}
