package mirror

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/common"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_ReplaceAndLoad(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := s.Replace(ctx, &Snapshot{
		SharingGroupID: "sg",
		MasterVersion:  3,
		FetchedAt:      at,
		Files: []*pb.FileInfo{
			{FileId: "b", DeviceId: "d", MimeType: "text/plain", FileVersion: 1, SizeBytes: 4},
			{FileId: "a", DeviceId: "d", MimeType: "image/png", FileVersion: 0, Deleted: true,
				AppMetaData: &pb.AppMetaData{Version: 2, Contents: "m"}},
		},
	})
	require.NoError(t, err)

	snap, err := s.Load(ctx, "sg")
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.MasterVersion)
	assert.True(t, at.Equal(snap.FetchedAt))
	require.Len(t, snap.Files, 2)
	assert.Equal(t, "a", snap.Files[0].FileId)
	assert.True(t, snap.Files[0].Deleted)
	assert.True(t, proto.Equal(&pb.AppMetaData{Version: 2, Contents: "m"}, snap.Files[0].AppMetaData))
	assert.Nil(t, snap.Files[1].AppMetaData)
}

func TestStore_ReplaceDropsOldRows(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, &Snapshot{SharingGroupID: "sg", MasterVersion: 1, FetchedAt: time.Now(),
		Files: []*pb.FileInfo{{FileId: "a"}, {FileId: "b"}}}))
	require.NoError(t, s.Replace(ctx, &Snapshot{SharingGroupID: "sg", MasterVersion: 2, FetchedAt: time.Now(),
		Files: []*pb.FileInfo{{FileId: "c"}}}))

	snap, err := s.Load(ctx, "sg")
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.MasterVersion)
	require.Len(t, snap.Files, 1)
	assert.Equal(t, "c", snap.Files[0].FileId)
}

func TestStore_LoadUnknown(t *testing.T) {
	s := openTemp(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, RunMigrations(context.Background(), s.db))
}
