package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/fileindex"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/locks"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/masterversions"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/sharinggroups"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/uploads"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	SharingGroups(db dbx.DBTX) sharinggroups.Repository
	MasterVersions(db dbx.DBTX) masterversions.Repository
	Uploads(db dbx.DBTX) uploads.Repository
	FileIndex(db dbx.DBTX) fileindex.Repository
	Locks(db dbx.DBTX) locks.Repository
}
