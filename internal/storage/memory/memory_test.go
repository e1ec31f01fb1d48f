package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
	"github.com/newsdesk/portal/internal/storage/memory"
	"github.com/newsdesk/portal/internal/storage/storetest"
)

func TestMemoryStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storage.Store {
		t.Helper()
		return memory.New()
	})
}

func TestMemoryStore_ClockControlsTimestamps(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	store := memory.NewWithClock(func() time.Time { return now })
	ctx := context.Background()

	category, err := store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name: "Tech", Slug: "tech", Color: "#10B981",
	})
	require.NoError(t, err)

	article, err := store.CreateArticle(ctx, &models.ArticleCreateRequest{
		Title:      "Launch",
		Slug:       "launch",
		Excerpt:    "e",
		Content:    "c",
		ImageURL:   "https://example.com/i.jpg",
		CategoryID: category.ID,
		Author:     "Reporter",
	})
	require.NoError(t, err)
	assert.True(t, article.CreatedAt.Equal(now))
	assert.True(t, article.PublishedAt.Equal(now), "publishedAt falls back to the creation instant")

	page, err := store.CreatePage(ctx, &models.PageCreateRequest{
		Title: "About", Slug: "about", Content: "x",
	})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	updated, err := store.UpdatePage(ctx, page.ID, &models.PageUpdateRequest{
		Content: strPtr("y"),
	})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.Equal(now))
	assert.True(t, updated.CreatedAt.Equal(page.CreatedAt))
}

func TestMemoryStore_PingAndClose(t *testing.T) {
	store := memory.New()
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

func strPtr(s string) *string { return &s }
