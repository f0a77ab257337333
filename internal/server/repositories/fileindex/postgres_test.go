package fileindex

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
	lookupRe = `(?s)^SELECT file_id, .* FROM file_index WHERE sharing_group_id = \$1 AND file_id = \$2$`
	listRe   = `(?s)^SELECT file_id, .* FROM file_index WHERE sharing_group_id = \$1 ORDER BY file_id$`
	insertRe = `(?s)^INSERT INTO file_index \(.*RETURNING created_at, updated_at$`
	updateRe = `(?s)^UPDATE file_index SET .* WHERE sharing_group_id = \$1 AND file_id = \$2 AND file_version = \$11$`
)

var indexColumns = []string{"file_id", "sharing_group_id", "device_id", "mime_type", "cloud_folder_name",
	"app_meta_data", "app_meta_data_version", "file_version", "size_bytes", "deleted", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestLookup(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(lookupRe).WithArgs("g1", "f1").
		WillReturnRows(sqlmock.NewRows(indexColumns).
			AddRow("f1", "g1", "d1", "text/plain", "Docs", "m", int64(1), int64(2), int64(10), false, now, now))
	mock.ExpectQuery(lookupRe).WithArgs("g1", "nope").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(lookupRe).WithArgs("g1", "f1").WillReturnError(errors.New("db down"))

	f, err := repo.Lookup(context.Background(), "g1", "f1")
	require.NoError(t, err)
	assert.Equal(t, "d1", f.DeviceID)
	assert.Equal(t, int64(2), f.FileVersion)
	require.NotNil(t, f.AppMetaData)
	assert.Equal(t, int64(1), f.AppMetaData.Version)

	_, err = repo.Lookup(context.Background(), "g1", "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Lookup(context.Background(), "g1", "f1")
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
}

func TestListForSharingGroup(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(listRe).WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(indexColumns).
			AddRow("f1", "g1", "d1", "", "", nil, nil, int64(0), int64(1), false, now, now).
			AddRow("f2", "g1", "d2", "", "", nil, nil, int64(4), int64(1), true, now, now))

	got, err := repo.ListForSharingGroup(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].AppMetaData)
	assert.Equal(t, models.FileStateDeleted, got[1].State())
}

func TestListForSharingGroup_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listRe).WillReturnError(errors.New("db err"))
	_, err := repo.ListForSharingGroup(context.Background(), "g1")
	require.Error(t, err)
	assert.Regexp(t, `failed to select file index: .*db err`, err.Error())

	mock.ExpectQuery(listRe).WillReturnRows(sqlmock.NewRows(indexColumns).
		AddRow("f1", "g1", "d1", "", "", nil, nil, "x", int64(1), false, time.Now(), time.Now()))
	_, err = repo.ListForSharingGroup(context.Background(), "g1")
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(insertRe).
		WithArgs("f1", "g1", "d1", "text/plain", "Docs", nil, nil, int64(0), int64(5), false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery(insertRe).WillReturnError(&pgconn.PgError{Code: "23505"})

	f := &models.FileIndex{FileID: "f1", SharingGroupID: "g1", DeviceID: "d1", MimeType: "text/plain",
		CloudFolderName: "Docs", SizeBytes: 5}
	require.NoError(t, repo.Insert(context.Background(), f))
	assert.Equal(t, now, f.CreatedAt)

	assert.ErrorIs(t, repo.Insert(context.Background(), f), common.ErrVersionConflict)
}

func TestUpdate_RowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	f := &models.FileIndex{FileID: "f1", SharingGroupID: "g1", DeviceID: "d2", FileVersion: 1,
		AppMetaData: &models.AppMetaData{Version: 0, Contents: "c"}}

	mock.ExpectExec(updateRe).
		WithArgs("g1", "f1", "d2", "", "", "c", int64(0), int64(1), int64(0), false, int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateRe).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(updateRe).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(updateRe).WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Update(context.Background(), f, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), f, 0), common.ErrVersionConflict)

	err := repo.Update(context.Background(), f, 0)
	require.Error(t, err)
	assert.Regexp(t, `unexpected rows affected: 2`, err.Error())

	err = repo.Update(context.Background(), f, 0)
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}
