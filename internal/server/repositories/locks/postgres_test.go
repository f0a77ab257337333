package locks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertRe      = `(?s)^INSERT INTO locks \(sharing_group_id, device_id, acquired_at\) VALUES \(\$1, \$2, now\(\)\) ON CONFLICT \(sharing_group_id\) DO NOTHING$`
	deleteStaleRe = `^DELETE FROM locks WHERE sharing_group_id = \$1 AND acquired_at < now\(\) - make_interval\(secs => \$2\)$`
	deleteRe      = `^DELETE FROM locks WHERE sharing_group_id = \$1$`
	getRe         = `^SELECT sharing_group_id, device_id, acquired_at FROM locks WHERE sharing_group_id = \$1$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestTryInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertRe).WithArgs("g1", "d1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertRe).WithArgs("g1", "d2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertRe).WillReturnError(errors.New("db down"))

	ok, err := repo.TryInsert(context.Background(), "g1", "d1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TryInsert(context.Background(), "g1", "d2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.TryInsert(context.Background(), "g1", "d3")
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStale(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteStaleRe).WithArgs("g1", 30.0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteStaleRe).WithArgs("g1", 0.25).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteStaleRe).WillReturnError(errors.New("db down"))

	n, err := repo.DeleteStale(context.Background(), "g1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteStale(context.Background(), "g1", 250*time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.DeleteStale(context.Background(), "g1", time.Second)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_IsUnconditional(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteRe).WithArgs("g1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteRe).WithArgs("g1").WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Delete(context.Background(), "g1"))
	assert.Error(t, repo.Delete(context.Background(), "g1"))
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectQuery(getRe).WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"sharing_group_id", "device_id", "acquired_at"}).AddRow("g1", "d1", at))
	mock.ExpectQuery(getRe).WithArgs("g2").WillReturnError(sql.ErrNoRows)

	l, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "d1", l.DeviceID)

	_, err = repo.Get(context.Background(), "g2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
