package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rekha718/blogapp/internal/domain"
)

func setupMockDB(t *testing.T) (domain.PostRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewPostRepository(gdb), mock
}

func postRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"post_id", "author_id", "title", "content", "tags", "images", "created_at", "updated_at"}).
		AddRow(1, 2, "First", "Hello", "{go,web}", "{}", now, now)
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "blogpost"`).WillReturnRows(postRows())

	post, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), post.PostID)
	assert.Equal(t, "First", post.Title)
	assert.Equal(t, []string{"go", "web"}, []string(post.Tags))
	assert.Empty(t, []string(post.Images))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "blogpost"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))

	_, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestGetAll(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "blogpost" ORDER BY post_id ASC`).WillReturnRows(postRows())

	posts, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "First", posts[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStampsTimestamps(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "blogpost"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(7))
	mock.ExpectCommit()

	post := &domain.Post{Title: "New", Content: "Body", AuthorID: 1, Tags: []string{}, Images: []string{}}
	require.NoError(t, repo.Create(post))
	assert.Equal(t, uint(7), post.PostID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReturnsRowState(t *testing.T) {
	repo, mock := setupMockDB(t)
	created := time.Now().Add(-time.Hour)
	updated := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE "blogpost" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "author_id", "title", "content", "tags", "images", "created_at", "updated_at"}).
			AddRow(1, 2, "Changed", "Body", "{}", "{}", created, updated))
	mock.ExpectCommit()

	post := &domain.Post{PostID: 1, Title: "Changed", Content: "Body", Tags: []string{}, Images: []string{}}
	require.NoError(t, repo.Update(post))
	// the returned row hydrates the untouched columns in the same round trip
	assert.Equal(t, uint(2), post.AuthorID)
	assert.True(t, post.UpdatedAt.After(post.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRow(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE "blogpost" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))
	mock.ExpectCommit()

	post := &domain.Post{PostID: 9999, Title: "Ghost", Content: "Body"}
	assert.ErrorIs(t, repo.Update(post), domain.ErrPostNotFound)
}

func TestDeleteReturnsRemovedRow(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM "blogpost"`).
		WillReturnRows(postRows())
	mock.ExpectCommit()

	post, err := repo.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), post.PostID)
	assert.Equal(t, "First", post.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRow(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM "blogpost"`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))
	mock.ExpectCommit()

	_, err := repo.Delete(9999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
