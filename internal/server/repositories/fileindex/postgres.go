package fileindex

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

const selectColumns = `file_id, sharing_group_id, device_id, mime_type, cloud_folder_name,
		     app_meta_data, app_meta_data_version, file_version, size_bytes, deleted, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.FileIndex, error) {
	var (
		f        models.FileIndex
		contents sql.NullString
		version  sql.NullInt64
	)
	err := s.Scan(&f.FileID, &f.SharingGroupID, &f.DeviceID, &f.MimeType, &f.CloudFolderName,
		&contents, &version, &f.FileVersion, &f.SizeBytes, &f.Deleted, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if version.Valid {
		f.AppMetaData = &models.AppMetaData{Version: version.Int64, Contents: contents.String}
	}
	return &f, nil
}

func appMetaDataArgs(md *models.AppMetaData) (sql.NullString, sql.NullInt64) {
	if md == nil {
		return sql.NullString{}, sql.NullInt64{}
	}
	return sql.NullString{String: md.Contents, Valid: true}, sql.NullInt64{Int64: md.Version, Valid: true}
}

func (r *PostgresRepository) Lookup(ctx context.Context, sharingGroupID, fileID string) (*models.FileIndex, error) {
	query := `SELECT ` + selectColumns + `
		 FROM file_index
		 WHERE sharing_group_id = $1 AND file_id = $2
		 `

	f, err := scanFile(r.db.QueryRowContext(ctx, query, sharingGroupID, fileID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) ListForSharingGroup(ctx context.Context, sharingGroupID string) ([]*models.FileIndex, error) {
	query := `SELECT ` + selectColumns + `
		 FROM file_index
		 WHERE sharing_group_id = $1
		 ORDER BY file_id
		 `

	rows, err := r.db.QueryContext(ctx, query, sharingGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to select file index: %w", err)
	}
	defer rows.Close()

	var result []*models.FileIndex
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Insert adds the first row of a file. An existing row for the same file
// yields common.ErrVersionConflict.
func (r *PostgresRepository) Insert(ctx context.Context, f *models.FileIndex) error {
	query :=
		`INSERT INTO file_index (file_id, sharing_group_id, device_id, mime_type, cloud_folder_name,
		     app_meta_data, app_meta_data_version, file_version, size_bytes, deleted)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at, updated_at
		 `

	contents, version := appMetaDataArgs(f.AppMetaData)
	err := r.db.QueryRowContext(ctx, query,
		f.FileID, f.SharingGroupID, f.DeviceID, f.MimeType, f.CloudFolderName,
		contents, version, f.FileVersion, f.SizeBytes, f.Deleted).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrVersionConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, f *models.FileIndex, expectedVersion int64) error {
	query :=
		`UPDATE file_index SET
		     device_id = $3,
		     mime_type = $4,
		     cloud_folder_name = $5,
		     app_meta_data = $6,
		     app_meta_data_version = $7,
		     file_version = $8,
		     size_bytes = $9,
		     deleted = $10,
		     updated_at = now()
		 WHERE sharing_group_id = $1 AND file_id = $2 AND file_version = $11
		 `

	contents, version := appMetaDataArgs(f.AppMetaData)
	res, err := r.db.ExecContext(ctx, query,
		f.SharingGroupID, f.FileID, f.DeviceID, f.MimeType, f.CloudFolderName,
		contents, version, f.FileVersion, f.SizeBytes, f.Deleted, expectedVersion)
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
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
