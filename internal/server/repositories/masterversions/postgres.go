package masterversions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sharingGroupID string) error {
	query := `INSERT INTO master_versions (sharing_group_id, value) VALUES ($1, 0)`

	if _, err := r.db.ExecContext(ctx, query, sharingGroupID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const currentQuery = `SELECT mv.value FROM master_versions mv
		 JOIN sharing_groups sg ON sg.id = mv.sharing_group_id
		 WHERE mv.sharing_group_id = $1 AND NOT sg.deleted`

func (r *PostgresRepository) Current(ctx context.Context, sharingGroupID string) (int64, error) {
	return r.scanValue(ctx, currentQuery, sharingGroupID)
}

func (r *PostgresRepository) CurrentForUpdate(ctx context.Context, sharingGroupID string) (int64, error) {
	return r.scanValue(ctx, currentQuery+` FOR UPDATE OF mv`, sharingGroupID)
}

func (r *PostgresRepository) scanValue(ctx context.Context, query string, args ...any) (int64, error) {
	var value int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

func (r *PostgresRepository) Advance(ctx context.Context, sharingGroupID string, expected int64) (int64, error) {
	query :=
		`UPDATE master_versions SET value = value + 1
		 WHERE sharing_group_id = $1 AND value = $2
		 RETURNING value
		 `

	var next int64
	err := r.db.QueryRowContext(ctx, query, sharingGroupID, expected).Scan(&next)
	if err == nil {
		return next, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("db error: %w", err)
	}

	current, err := r.Current(ctx, sharingGroupID)
	if err != nil {
		return 0, err
	}
	return 0, &common.VersionStaleError{Current: current}
}
