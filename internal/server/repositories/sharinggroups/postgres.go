package sharinggroups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, name string) (*models.SharingGroup, error) {
	query :=
		`INSERT INTO sharing_groups (name)
		 VALUES ($1)
		 RETURNING id, created_at
		 `

	g := &models.SharingGroup{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&g.ID, &g.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return g, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.SharingGroup, error) {
	query :=
		`SELECT id, name, deleted, created_at FROM sharing_groups
		 WHERE id = $1
		 `

	g := &models.SharingGroup{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Deleted, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return g, nil
}

// MarkDeleted soft-deletes the group. Deleting an already deleted group is
// reported as not found.
func (r *PostgresRepository) MarkDeleted(ctx context.Context, id string) error {
	query := `UPDATE sharing_groups SET deleted = true WHERE id = $1 AND NOT deleted`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}

	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
