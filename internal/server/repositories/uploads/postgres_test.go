package uploads

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stageRe   = `(?s)^INSERT INTO uploads \(file_id, sharing_group_id, device_id, kind, file_version, .*RETURNING created_at$`
	entriesRe = `(?s)^SELECT file_id, .* FROM uploads WHERE sharing_group_id = \$1 AND device_id = \$2 ORDER BY created_at, file_id$`
	clearRe   = `^DELETE FROM uploads WHERE sharing_group_id = \$1 AND device_id = \$2$`
)

var uploadColumns = []string{"file_id", "sharing_group_id", "device_id", "kind", "file_version", "mime_type",
	"cloud_folder_name", "size_bytes", "app_meta_data", "app_meta_data_version", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestStage_InsertsRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(stageRe).
		WithArgs("f1", "g1", "d1", "fileUpload", int64(0), "text/plain", "Docs", int64(12),
			"{}", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	u := &models.Upload{FileID: "f1", SharingGroupID: "g1", DeviceID: "d1", Kind: models.UploadKindFile,
		MimeType: "text/plain", CloudFolderName: "Docs", SizeBytes: 12,
		AppMetaData: &models.AppMetaData{Version: 0, Contents: "{}"}}
	require.NoError(t, repo.Stage(context.Background(), u))
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStage_DuplicateIsDistinct(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(stageRe).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uploads_file_group_device_key"})
	mock.ExpectQuery(stageRe).WillReturnError(errors.New("db down"))

	u := &models.Upload{FileID: "f1", SharingGroupID: "g1", DeviceID: "d1", Kind: models.UploadKindDeletion}

	err := repo.Stage(context.Background(), u)
	assert.ErrorIs(t, err, common.ErrDuplicateStaging)

	err = repo.Stage(context.Background(), u)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateStaging)
	assert.Regexp(t, `db error: .*db down`, err.Error())
}

func TestEntriesFor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(uploadColumns).
		AddRow("f1", "g1", "d1", "fileUpload", int64(1), "image/png", "Photos", int64(99), "meta", int64(2), now).
		AddRow("f2", "g1", "d1", "markedForDeletion", int64(3), "", "", int64(0), nil, nil, now)
	mock.ExpectQuery(entriesRe).WithArgs("g1", "d1").WillReturnRows(rows)

	got, err := repo.EntriesFor(context.Background(), "g1", "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.UploadKindFile, got[0].Kind)
	require.NotNil(t, got[0].AppMetaData)
	assert.Equal(t, int64(2), got[0].AppMetaData.Version)
	assert.Equal(t, "meta", got[0].AppMetaData.Contents)

	assert.Equal(t, models.UploadKindDeletion, got[1].Kind)
	assert.Nil(t, got[1].AppMetaData)
	assert.Equal(t, int64(3), got[1].FileVersion)
}

func TestEntriesFor_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(entriesRe).WillReturnError(errors.New("db err"))
	_, err := repo.EntriesFor(context.Background(), "g1", "d1")
	require.Error(t, err)
	assert.Regexp(t, `failed to select uploads: .*db err`, err.Error())

	rows := sqlmock.NewRows(uploadColumns).
		AddRow("f1", "g1", "d1", "fileUpload", "not-int", "", "", int64(0), nil, nil, time.Now())
	mock.ExpectQuery(entriesRe).WillReturnRows(rows)
	_, err = repo.EntriesFor(context.Background(), "g1", "d1")
	assert.Error(t, err)

	rows = sqlmock.NewRows(uploadColumns).
		AddRow("f1", "g1", "d1", "fileUpload", int64(0), "", "", int64(0), nil, nil, time.Now()).
		RowError(0, errors.New("row-err"))
	mock.ExpectQuery(entriesRe).WillReturnRows(rows)
	_, err = repo.EntriesFor(context.Background(), "g1", "d1")
	require.Error(t, err)
	assert.Equal(t, "row-err", err.Error())
}

func TestClear_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(clearRe).WithArgs("g1", "d1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(clearRe).WithArgs("g1", "d1").WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	n, err := repo.Clear(context.Background(), "g1", "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.Clear(context.Background(), "g1", "d1")
	require.Error(t, err)
	assert.Regexp(t, `rows affected error`, err.Error())
}
