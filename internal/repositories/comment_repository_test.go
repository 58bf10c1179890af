package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommentsByPostRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCommentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_kind", "post_id", "author_id", "content"}).
			AddRow(2, string(testRef.Kind), testRef.ID, 3, "second").
			AddRow(1, string(testRef.Kind), testRef.ID, 2, "first"))

	comments, err := repo.GetCommentsByPostRef(testRef)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, testRef, comments[0].Ref())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteByPostRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCommentRepository(db)

	// gorm.Model means comment deletes are soft deletes
	mock.ExpectExec(`UPDATE "comments" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByPostRef(testRef))
	assert.NoError(t, mock.ExpectationsWereMet())
}
