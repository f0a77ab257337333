// Package uploads is the staging area: one pending mutation per
// (file, sharing group, device), written without any lock and consumed by a
// commit.
package uploads

import (
	"context"

	"github.com/dmitrijs2005/syncserver/internal/server/models"
)

type Repository interface {
	// Stage inserts u. A second row for the same file and device fails with
	// common.ErrDuplicateStaging.
	Stage(ctx context.Context, u *models.Upload) error
	EntriesFor(ctx context.Context, sharingGroupID, deviceID string) ([]*models.Upload, error)
	// Clear removes every staged row of the device and returns how many went.
	Clear(ctx context.Context, sharingGroupID, deviceID string) (int64, error)
}
