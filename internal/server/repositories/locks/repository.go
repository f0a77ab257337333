// Package locks stores the advisory commit lock: at most one row per sharing
// group, claimed with a conditional insert.
package locks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/server/models"
)

type Repository interface {
	// TryInsert claims the lock row and reports whether this call won it.
	// The acquisition time is taken from the database clock.
	TryInsert(ctx context.Context, sharingGroupID, deviceID string) (bool, error)
	// DeleteStale removes the row if, by the database clock, it is older
	// than staleAfter.
	DeleteStale(ctx context.Context, sharingGroupID string, staleAfter time.Duration) (int64, error)
	// Delete removes the row whoever holds it.
	Delete(ctx context.Context, sharingGroupID string) error
	Get(ctx context.Context, sharingGroupID string) (*models.Lock, error)
}
