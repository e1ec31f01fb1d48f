package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
	"github.com/newsdesk/portal/internal/storage/postgres"
	"github.com/newsdesk/portal/internal/storage/storetest"
)

// TestPostgresStore_Conformance runs the shared contract suite against a real
// database. Set PORTAL_TEST_DATABASE_URL to a migrated, disposable database.
func TestPostgresStore_Conformance(t *testing.T) {
	dsn := os.Getenv("PORTAL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PORTAL_TEST_DATABASE_URL not set, skipping postgres integration tests")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	storetest.Run(t, func(t *testing.T) storage.Store {
		t.Helper()
		_, truncErr := db.Exec(`
			TRUNCATE articles, categories, pages, social_settings, site_settings, media
			RESTART IDENTITY CASCADE
		`)
		require.NoError(t, truncErr)
		return postgres.New(db)
	})
}

func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.New(sqlx.NewDb(db, "postgres")), mock
}

func TestCategoryBySlug_ErrorMapping(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.CategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory_UniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name: "Sports", Slug: "sports", Color: "#fff",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory_ForeignKeyViolation(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := store.DeleteCategory(ctx, 1)
	assert.ErrorIs(t, err, models.ErrCategoryInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteCategory(ctx, 7)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_ForeignKeyViolation(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := store.CreateArticle(ctx, &models.ArticleCreateRequest{
		Title:      "T",
		Slug:       "t",
		Excerpt:    "e",
		Content:    "c",
		ImageURL:   "https://example.com/i.jpg",
		CategoryID: 9999,
		Author:     "a",
	})
	assert.ErrorIs(t, err, models.ErrInvalidCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_UniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.CreateArticle(ctx, &models.ArticleCreateRequest{
		Title:      "T",
		Slug:       "taken",
		Excerpt:    "e",
		Content:    "c",
		ImageURL:   "https://example.com/i.jpg",
		CategoryID: 1,
		Author:     "a",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateArticle_NoFields(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.UpdateArticle(context.Background(), 1, &models.ArticleUpdateRequest{})
	assert.ErrorIs(t, err, models.ErrNoFieldsToUpdate)
}

func TestDeleteArticle_Success(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.DeleteArticle(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountArticles_Filtered(t *testing.T) {
	store, mock := newMockStore(t)

	var categoryID int64 = 2
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles WHERE category_id`).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := store.CountArticles(context.Background(), &categoryID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
