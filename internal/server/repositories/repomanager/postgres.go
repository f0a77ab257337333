// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/server/migrations"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/fileindex"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/locks"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/masterversions"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/sharinggroups"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/uploads"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) SharingGroups(db dbx.DBTX) sharinggroups.Repository {
	return sharinggroups.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) MasterVersions(db dbx.DBTX) masterversions.Repository {
	return masterversions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Uploads(db dbx.DBTX) uploads.Repository {
	return uploads.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) FileIndex(db dbx.DBTX) fileindex.Repository {
	return fileindex.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Locks(db dbx.DBTX) locks.Repository {
	return locks.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
