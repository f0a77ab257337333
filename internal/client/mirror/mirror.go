// Package mirror keeps a local SQLite copy of the last file index fetched
// for each sharing group, together with the master version it belongs to.
// The client asserts that version on its next mutation.
package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/client/mirror/migrations"
	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the mirror database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot is one fetched index.
type Snapshot struct {
	SharingGroupID string
	MasterVersion  int64
	FetchedAt      time.Time
	Files          []*pb.FileInfo
}

// Replace stores snap as the current copy of its sharing group, dropping
// whatever was stored before.
func (s *Store) Replace(ctx context.Context, snap *Snapshot) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE sharing_group_id = ?`, snap.SharingGroupID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO sharing_groups (sharing_group_id, master_version, fetched_at) VALUES (?, ?, ?)
			 ON CONFLICT (sharing_group_id) DO UPDATE SET master_version = excluded.master_version, fetched_at = excluded.fetched_at`,
			snap.SharingGroupID, snap.MasterVersion, snap.FetchedAt.UTC())
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		for _, f := range snap.Files {
			var contents sql.NullString
			var version sql.NullInt64
			if f.AppMetaData != nil {
				contents = sql.NullString{String: f.AppMetaData.Contents, Valid: true}
				version = sql.NullInt64{Int64: f.AppMetaData.Version, Valid: true}
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO files (sharing_group_id, file_id, device_id, mime_type, cloud_folder_name,
				     file_version, size_bytes, deleted, app_meta_data, app_meta_data_version)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				snap.SharingGroupID, f.FileId, f.DeviceId, f.MimeType, f.CloudFolderName,
				f.FileVersion, f.SizeBytes, f.Deleted, contents, version)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return nil
	})
}

// Load returns the stored copy of the sharing group, or
// common.ErrorNotFound if it was never fetched.
func (s *Store) Load(ctx context.Context, sharingGroupID string) (*Snapshot, error) {
	snap := &Snapshot{SharingGroupID: sharingGroupID}

	err := s.db.QueryRowContext(ctx,
		`SELECT master_version, fetched_at FROM sharing_groups WHERE sharing_group_id = ?`,
		sharingGroupID).Scan(&snap.MasterVersion, &snap.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT file_id, device_id, mime_type, cloud_folder_name, file_version, size_bytes, deleted,
		     app_meta_data, app_meta_data_version
		 FROM files WHERE sharing_group_id = ? ORDER BY file_id`, sharingGroupID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f := &pb.FileInfo{}
		var contents sql.NullString
		var version sql.NullInt64
		if err := rows.Scan(&f.FileId, &f.DeviceId, &f.MimeType, &f.CloudFolderName, &f.FileVersion,
			&f.SizeBytes, &f.Deleted, &contents, &version); err != nil {
			return nil, err
		}
		if version.Valid {
			f.AppMetaData = &pb.AppMetaData{Version: version.Int64, Contents: contents.String}
		}
		snap.Files = append(snap.Files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}
