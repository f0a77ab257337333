package locks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) TryInsert(ctx context.Context, sharingGroupID, deviceID string) (bool, error) {
	query :=
		`INSERT INTO locks (sharing_group_id, device_id, acquired_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (sharing_group_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, sharingGroupID, deviceID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}

	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// DeleteStale compares against now() so that servers with skewed clocks
// agree on which lock is stale.
func (r *PostgresRepository) DeleteStale(ctx context.Context, sharingGroupID string, staleAfter time.Duration) (int64, error) {
	query := `DELETE FROM locks WHERE sharing_group_id = $1 AND acquired_at < now() - make_interval(secs => $2)`

	res, err := r.db.ExecContext(ctx, query, sharingGroupID, staleAfter.Seconds())
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, sharingGroupID string) error {
	query := `DELETE FROM locks WHERE sharing_group_id = $1`

	if _, err := r.db.ExecContext(ctx, query, sharingGroupID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, sharingGroupID string) (*models.Lock, error) {
	query := `SELECT sharing_group_id, device_id, acquired_at FROM locks WHERE sharing_group_id = $1`

	l := &models.Lock{}
	err := r.db.QueryRowContext(ctx, query, sharingGroupID).Scan(&l.SharingGroupID, &l.DeviceID, &l.AcquiredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}
