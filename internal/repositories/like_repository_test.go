package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a gorm connection over a sqlmock driver. Default
// transactions are skipped so single statements are observed as-is.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

var testRef = models.PostRef{Kind: models.KindCommunity, ID: "65a000000000000000000001"}

func TestCreateLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`INSERT INTO "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.CreateLike(&models.Like{PostKind: testRef.Kind, PostID: testRef.ID, UserID: 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUserLikedPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.HasUserLikedPost(testRef, 7)
	require.NoError(t, err)
	assert.True(t, liked)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	liked, err = repo.HasUserLikedPost(testRef, 8)
	require.NoError(t, err)
	assert.False(t, liked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByPostRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountByPostRef(testRef)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectExec(`DELETE FROM "likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteLike(testRef, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeDeleteByPostRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectExec(`DELETE FROM "likes"`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteByPostRef(testRef))
	assert.NoError(t, mock.ExpectationsWereMet())
}
