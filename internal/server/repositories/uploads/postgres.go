package uploads

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Stage(ctx context.Context, u *models.Upload) error {
	query :=
		`INSERT INTO uploads (file_id, sharing_group_id, device_id, kind, file_version,
		     mime_type, cloud_folder_name, size_bytes, app_meta_data, app_meta_data_version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at
		 `

	var contents sql.NullString
	var version sql.NullInt64
	if u.AppMetaData != nil {
		contents = sql.NullString{String: u.AppMetaData.Contents, Valid: true}
		version = sql.NullInt64{Int64: u.AppMetaData.Version, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		u.FileID, u.SharingGroupID, u.DeviceID, string(u.Kind), u.FileVersion,
		u.MimeType, u.CloudFolderName, u.SizeBytes, contents, version).Scan(&u.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicateStaging
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) EntriesFor(ctx context.Context, sharingGroupID, deviceID string) ([]*models.Upload, error) {
	query :=
		`SELECT file_id, sharing_group_id, device_id, kind, file_version, mime_type,
		     cloud_folder_name, size_bytes, app_meta_data, app_meta_data_version, created_at
		 FROM uploads
		 WHERE sharing_group_id = $1 AND device_id = $2
		 ORDER BY created_at, file_id
		 `

	rows, err := r.db.QueryContext(ctx, query, sharingGroupID, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to select uploads: %w", err)
	}
	defer rows.Close()

	var result []*models.Upload
	for rows.Next() {
		var (
			item     models.Upload
			kind     string
			contents sql.NullString
			version  sql.NullInt64
		)
		err := rows.Scan(&item.FileID, &item.SharingGroupID, &item.DeviceID, &kind, &item.FileVersion,
			&item.MimeType, &item.CloudFolderName, &item.SizeBytes, &contents, &version, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		item.Kind = models.UploadKind(kind)
		if version.Valid {
			item.AppMetaData = &models.AppMetaData{Version: version.Int64, Contents: contents.String}
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, sharingGroupID, deviceID string) (int64, error) {
	query := `DELETE FROM uploads WHERE sharing_group_id = $1 AND device_id = $2`

	res, err := r.db.ExecContext(ctx, query, sharingGroupID, deviceID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
