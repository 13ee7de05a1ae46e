package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
)

func newInventoryMock(t *testing.T) (*inventoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewInventoryRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

// DeleteBook must take the book row lock before counting open loans, so a
// loan issued concurrently either commits before the count (and blocks the
// delete) or waits behind the lock until the book is gone.
func TestInventoryRepository_DeleteBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lockQ := regexp.QuoteMeta(`select id from books where id = $1 for update`)
	countQ := regexp.QuoteMeta(`select count(*) from issued_books where book_id = $1`)
	deleteQ := regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo, mock := newInventoryMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQ).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectQuery(countQ).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(deleteQ).WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteBook(ctx, 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("currently issued", func(t *testing.T) {
		t.Parallel()
		repo, mock := newInventoryMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQ).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectQuery(countQ).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		err := repo.DeleteBook(ctx, 3)
		require.ErrorIs(t, err, errs.ErrBookCurrentlyIssued)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newInventoryMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQ).WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.DeleteBook(ctx, 99)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
