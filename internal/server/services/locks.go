package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/logging"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/repomanager"
)

// LockManager grants the per sharing group commit lock. Acquisition never
// waits: a held lock fails with common.ErrLockHeld. A lock older than
// staleAfter belongs to a crashed or hung commit and is reclaimed.
//
// The lock row lives in the database, so exclusion holds across server
// processes, and its age is measured by the database clock. Statements run outside any transaction so a claim is visible
// to other processes immediately.
type LockManager struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	staleAfter  time.Duration
	log         logging.Logger
}

func NewLockManager(db *sql.DB, rm repomanager.RepositoryManager, staleAfter time.Duration, log logging.Logger) *LockManager {
	return &LockManager{
		db:          db,
		repomanager: rm,
		staleAfter:  staleAfter,
		log:         log.With("module", "lock_manager"),
	}
}

func (m *LockManager) Acquire(ctx context.Context, sharingGroupID, deviceID string) error {
	repo := m.repomanager.Locks(m.db)

	ok, err := repo.TryInsert(ctx, sharingGroupID, deviceID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	purged, err := repo.DeleteStale(ctx, sharingGroupID, m.staleAfter)
	if err != nil {
		return err
	}
	if purged == 0 {
		return common.ErrLockHeld
	}
	m.log.Warn(ctx, "reclaimed stale lock", "sharing_group", sharingGroupID, "device", deviceID)

	// retry exactly once; another reclaimer may have won the row meanwhile
	ok, err = repo.TryInsert(ctx, sharingGroupID, deviceID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrLockHeld
	}
	return nil
}

// Release drops the lock whoever holds it. It is idempotent and ignores
// cancellation of ctx so that an aborted request does not strand the row.
func (m *LockManager) Release(ctx context.Context, sharingGroupID string) error {
	return m.repomanager.Locks(m.db).Delete(context.WithoutCancel(ctx), sharingGroupID)
}

// WithLock runs fn while holding the lock of the sharing group. The lock is
// released however fn ends.
func (m *LockManager) WithLock(ctx context.Context, sharingGroupID, deviceID string, fn func(ctx context.Context) error) (err error) {
	if err := m.Acquire(ctx, sharingGroupID, deviceID); err != nil {
		return err
	}

	defer func() {
		if rerr := m.Release(ctx, sharingGroupID); rerr != nil {
			m.log.Error(ctx, "failed to release lock", "sharing_group", sharingGroupID, "error", rerr)
			if err == nil {
				err = rerr
			}
		}
	}()

	return fn(ctx)
}
