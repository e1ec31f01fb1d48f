// Package storetest holds a conformance suite every storage.Store
// implementation must pass. The memory backend runs it unconditionally;
// the postgres backend runs it against a real database when
// PORTAL_TEST_DATABASE_URL is set.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
)

// Factory returns a fresh, empty store for one subtest
type Factory func(t *testing.T) storage.Store

// Run executes the full conformance suite against stores built by factory
func Run(t *testing.T, factory Factory) {
	t.Run("Categories", func(t *testing.T) { testCategories(t, factory) })
	t.Run("CategoryConflicts", func(t *testing.T) { testCategoryConflicts(t, factory) })
	t.Run("CategoryDeleteRestrict", func(t *testing.T) { testCategoryDeleteRestrict(t, factory) })
	t.Run("ArticleRoundTrip", func(t *testing.T) { testArticleRoundTrip(t, factory) })
	t.Run("ArticleInvalidCategory", func(t *testing.T) { testArticleInvalidCategory(t, factory) })
	t.Run("ArticleDuplicateSlug", func(t *testing.T) { testArticleDuplicateSlug(t, factory) })
	t.Run("ArticleUpdateSemantics", func(t *testing.T) { testArticleUpdateSemantics(t, factory) })
	t.Run("ArticlePagination", func(t *testing.T) { testArticlePagination(t, factory) })
	t.Run("FeaturedAndBreaking", func(t *testing.T) { testFeaturedAndBreaking(t, factory) })
	t.Run("Pages", func(t *testing.T) { testPages(t, factory) })
	t.Run("SocialSettings", func(t *testing.T) { testSocialSettings(t, factory) })
	t.Run("SiteSettingUpsert", func(t *testing.T) { testSiteSettingUpsert(t, factory) })
	t.Run("Media", func(t *testing.T) { testMedia(t, factory) })
}

func boolPtr(b bool) *bool           { return &b }
func intPtr(i int) *int              { return &i }
func strPtr(s string) *string        { return &s }
func timePtr(v time.Time) *time.Time { return &v }

func mustCreateCategory(t *testing.T, store storage.Store, name, slug string, sortOrder int) *models.Category {
	t.Helper()
	category, err := store.CreateCategory(context.Background(), &models.CategoryCreateRequest{
		Name:      name,
		Slug:      slug,
		Color:     "#3B82F6",
		SortOrder: intPtr(sortOrder),
	})
	require.NoError(t, err)
	return category
}

func articleRequest(slug string, categoryID int64, publishedAt time.Time) *models.ArticleCreateRequest {
	return &models.ArticleCreateRequest{
		Title:       "Title " + slug,
		Slug:        slug,
		Excerpt:     "Excerpt for " + slug,
		Content:     "Content for " + slug,
		ImageURL:    "https://example.com/" + slug + ".jpg",
		CategoryID:  categoryID,
		Author:      "Reporter",
		PublishedAt: timePtr(publishedAt),
	}
}

func testCategories(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "Sports", "sports", 2)
	mustCreateCategory(t, store, "Politics", "politics", 1)
	hidden, err := store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name:       "Archive",
		Slug:       "archive",
		Color:      "#111111",
		ShowInMenu: boolPtr(false),
		SortOrder:  intPtr(3),
	})
	require.NoError(t, err)
	assert.False(t, hidden.ShowInMenu)

	all, err := store.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"politics", "sports", "archive"},
		[]string{all[0].Slug, all[1].Slug, all[2].Slug})

	menu, err := store.MenuCategories(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	for _, c := range menu {
		assert.True(t, c.ShowInMenu)
	}

	bySlug, err := store.CategoryBySlug(ctx, "politics")
	require.NoError(t, err)
	assert.Equal(t, "Politics", bySlug.Name)

	byID, err := store.CategoryByID(ctx, bySlug.ID)
	require.NoError(t, err)
	assert.Equal(t, bySlug.Slug, byID.Slug)

	_, err = store.CategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	updated, err := store.UpdateCategory(ctx, bySlug.ID, &models.CategoryUpdateRequest{
		Color: strPtr("#000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", updated.Color)
	assert.Equal(t, "Politics", updated.Name)
}

func testCategoryConflicts(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "Sports", "sports", 0)

	_, err := store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name: "Other", Slug: "sports", Color: "#fff",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	_, err = store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name: "Sports", Slug: "other", Color: "#fff",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	other := mustCreateCategory(t, store, "Tech", "tech", 1)
	_, err = store.UpdateCategory(ctx, other.ID, &models.CategoryUpdateRequest{
		Slug: strPtr("sports"),
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	// Name uniqueness is case-sensitive, like the database constraint
	upper, err := store.CreateCategory(ctx, &models.CategoryCreateRequest{
		Name: "SPORTS", Slug: "sports-upper", Color: "#fff",
	})
	require.NoError(t, err)
	assert.Equal(t, "SPORTS", upper.Name)
}

func testCategoryDeleteRestrict(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	category := mustCreateCategory(t, store, "Sports", "sports", 0)
	_, err := store.CreateArticle(ctx, articleRequest("match-report", category.ID, time.Now()))
	require.NoError(t, err)

	err = store.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, models.ErrCategoryInUse)

	empty := mustCreateCategory(t, store, "Tech", "tech", 1)
	require.NoError(t, store.DeleteCategory(ctx, empty.ID))
	assert.ErrorIs(t, store.DeleteCategory(ctx, empty.ID), models.ErrNotFound)
}

func testArticleRoundTrip(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	category := mustCreateCategory(t, store, "Tech", "tech", 0)
	created, err := store.CreateArticle(ctx, articleRequest("launch-day", category.ID, time.Now()))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.DefaultLanguage, created.Language)
	assert.Zero(t, created.Views)

	bySlug, err := store.ArticleBySlug(ctx, "launch-day")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
	assert.Equal(t, category.ID, bySlug.Category.ID)
	assert.Equal(t, "tech", bySlug.Category.Slug)

	byID, err := store.ArticleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "launch-day", byID.Slug)

	_, err = store.ArticleBySlug(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, store.DeleteArticle(ctx, created.ID))
	assert.ErrorIs(t, store.DeleteArticle(ctx, created.ID), models.ErrNotFound)
}

func testArticleInvalidCategory(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	_, err := store.CreateArticle(ctx, articleRequest("orphan", 9999, time.Now()))
	assert.ErrorIs(t, err, models.ErrInvalidCategory)

	category := mustCreateCategory(t, store, "Tech", "tech", 0)
	created, err := store.CreateArticle(ctx, articleRequest("valid", category.ID, time.Now()))
	require.NoError(t, err)

	var missing int64 = 9999
	_, err = store.UpdateArticle(ctx, created.ID, &models.ArticleUpdateRequest{
		CategoryID: &missing,
	})
	assert.ErrorIs(t, err, models.ErrInvalidCategory)
}

func testArticleDuplicateSlug(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	category := mustCreateCategory(t, store, "Tech", "tech", 0)
	_, err := store.CreateArticle(ctx, articleRequest("taken", category.ID, time.Now()))
	require.NoError(t, err)

	_, err = store.CreateArticle(ctx, articleRequest("taken", category.ID, time.Now()))
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	second, err := store.CreateArticle(ctx, articleRequest("free", category.ID, time.Now()))
	require.NoError(t, err)
	_, err = store.UpdateArticle(ctx, second.ID, &models.ArticleUpdateRequest{
		Slug: strPtr("taken"),
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func testArticleUpdateSemantics(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	category := mustCreateCategory(t, store, "Tech", "tech", 0)
	publishedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created, err := store.CreateArticle(ctx, articleRequest("stable-times", category.ID, publishedAt))
	require.NoError(t, err)

	updated, err := store.UpdateArticle(ctx, created.ID, &models.ArticleUpdateRequest{
		Title:      strPtr("Rewritten"),
		IsFeatured: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", updated.Title)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.True(t, created.PublishedAt.Equal(updated.PublishedAt), "publishedAt must not change on update")
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "createdAt must not change on update")

	_, err = store.UpdateArticle(ctx, 9999, &models.ArticleUpdateRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// testArticlePagination covers the three-category scenario: 6 + 3 + 1
// articles, listed globally and per category with limit/offset.
func testArticlePagination(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	counts := []int{6, 3, 1}
	categoryIDs := make([]int64, len(counts))
	serial := 0
	for i, n := range counts {
		category := mustCreateCategory(t, store,
			fmt.Sprintf("Cat %d", i), fmt.Sprintf("cat-%d", i), i)
		categoryIDs[i] = category.ID
		for j := 0; j < n; j++ {
			serial++
			_, err := store.CreateArticle(ctx, articleRequest(
				fmt.Sprintf("article-%d-%d", i, j),
				category.ID,
				base.Add(time.Duration(serial)*time.Hour),
			))
			require.NoError(t, err)
		}
	}

	total, err := store.CountArticles(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	// Global listing is newest first
	all, err := store.Articles(ctx, storage.ListArticlesOptions{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].PublishedAt.Before(all[i].PublishedAt))
	}

	// limit/offset yields a contiguous slice of the same ordering
	page1, err := store.Articles(ctx, storage.ListArticlesOptions{Limit: 4})
	require.NoError(t, err)
	page2, err := store.Articles(ctx, storage.ListArticlesOptions{Limit: 4, Offset: 4})
	require.NoError(t, err)
	page3, err := store.Articles(ctx, storage.ListArticlesOptions{Limit: 4, Offset: 8})
	require.NoError(t, err)
	require.Len(t, page1, 4)
	require.Len(t, page2, 4)
	require.Len(t, page3, 2)

	seen := map[int64]bool{}
	for _, page := range [][]models.ArticleWithCategory{page1, page2, page3} {
		for _, a := range page {
			assert.False(t, seen[a.ID], "article %d appeared twice across pages", a.ID)
			seen[a.ID] = true
		}
	}

	// Per-category filter and count agree
	for i, want := range counts {
		filtered, listErr := store.Articles(ctx, storage.ListArticlesOptions{
			Limit:      50,
			CategoryID: &categoryIDs[i],
		})
		require.NoError(t, listErr)
		assert.Len(t, filtered, want)
		for _, a := range filtered {
			assert.Equal(t, categoryIDs[i], a.CategoryID)
		}

		count, countErr := store.CountArticles(ctx, &categoryIDs[i])
		require.NoError(t, countErr)
		assert.Equal(t, int64(want), count)
	}

	// Offset past the end returns an empty slice, not an error
	empty, err := store.Articles(ctx, storage.ListArticlesOptions{Limit: 4, Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testFeaturedAndBreaking(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	category := mustCreateCategory(t, store, "News", "news", 0)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		req := articleRequest(fmt.Sprintf("featured-%d", i), category.ID, base.Add(time.Duration(i)*time.Minute))
		req.IsFeatured = boolPtr(true)
		_, err := store.CreateArticle(ctx, req)
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		req := articleRequest(fmt.Sprintf("breaking-%d", i), category.ID, base.Add(time.Duration(100+i)*time.Minute))
		req.IsBreaking = boolPtr(true)
		_, err := store.CreateArticle(ctx, req)
		require.NoError(t, err)
	}

	featured, err := store.FeaturedArticles(ctx, 6)
	require.NoError(t, err)
	require.Len(t, featured, 6)
	for _, a := range featured {
		assert.True(t, a.IsFeatured)
	}

	breaking, err := store.BreakingNews(ctx, 3)
	require.NoError(t, err)
	require.Len(t, breaking, 3)
	for _, a := range breaking {
		assert.True(t, a.IsBreaking)
	}
	// Newest breaking entries win
	assert.Equal(t, "breaking-4", breaking[0].Slug)
}

func testPages(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	published, err := store.CreatePage(ctx, &models.PageCreateRequest{
		Title: "About", Slug: "about", Content: "About us",
	})
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	draft, err := store.CreatePage(ctx, &models.PageCreateRequest{
		Title: "Draft", Slug: "draft", Content: "WIP", IsPublished: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)

	_, err = store.CreatePage(ctx, &models.PageCreateRequest{
		Title: "Dup", Slug: "about", Content: "x",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	// Store lookups see drafts; the publish gate lives in the route layer
	bySlug, err := store.PageBySlug(ctx, "draft")
	require.NoError(t, err)
	assert.False(t, bySlug.IsPublished)

	updated, err := store.UpdatePage(ctx, draft.ID, &models.PageUpdateRequest{
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.False(t, updated.UpdatedAt.Before(draft.UpdatedAt), "updatedAt must be refreshed")
	assert.True(t, updated.CreatedAt.Equal(draft.CreatedAt))

	pages, err := store.Pages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	require.NoError(t, store.DeletePage(ctx, draft.ID))
	_, err = store.PageByID(ctx, draft.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func testSocialSettings(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	_, err := store.CreateSocialSetting(ctx, &models.SocialSettingCreateRequest{
		Platform: "twitter", URL: "https://twitter.com/portal", IconClass: "fa-twitter",
		SortOrder: intPtr(2),
	})
	require.NoError(t, err)

	disabled, err := store.CreateSocialSetting(ctx, &models.SocialSettingCreateRequest{
		Platform: "facebook", URL: "https://facebook.com/portal", IconClass: "fa-facebook",
		IsEnabled: boolPtr(false), SortOrder: intPtr(1),
	})
	require.NoError(t, err)

	_, err = store.CreateSocialSetting(ctx, &models.SocialSettingCreateRequest{
		Platform: "twitter", URL: "https://example.com", IconClass: "fa-x",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	all, err := store.SocialSettings(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "facebook", all[0].Platform, "sortOrder drives the listing")

	enabled, err := store.SocialSettings(ctx, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "twitter", enabled[0].Platform)

	updated, err := store.UpdateSocialSetting(ctx, disabled.ID, &models.SocialSettingUpdateRequest{
		IsEnabled: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsEnabled)

	require.NoError(t, store.DeleteSocialSetting(ctx, disabled.ID))
	_, err = store.SocialSettingByID(ctx, disabled.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Platform uniqueness is case-sensitive, like the database constraint
	cased, err := store.CreateSocialSetting(ctx, &models.SocialSettingCreateRequest{
		Platform: "Twitter", URL: "https://twitter.com/portal", IconClass: "fa-twitter",
	})
	require.NoError(t, err)
	assert.Equal(t, "Twitter", cased.Platform)
}

func testSiteSettingUpsert(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	first, err := store.UpsertSiteSetting(ctx, &models.SiteSettingUpsertRequest{
		Key: "site_title", Value: "The Portal",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SettingTypeText, first.Type)

	second, err := store.UpsertSiteSetting(ctx, &models.SiteSettingUpsertRequest{
		Key: "site_title", Value: "The Daily Portal", Type: models.SettingTypeText,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert on an existing key must update in place")
	assert.Equal(t, "The Daily Portal", second.Value)

	all, err := store.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byKey, err := store.SiteSettingByKey(ctx, "site_title")
	require.NoError(t, err)
	assert.Equal(t, "The Daily Portal", byKey.Value)

	_, err = store.SiteSettingByKey(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func testMedia(t *testing.T, factory Factory) {
	store := factory(t)
	ctx := context.Background()

	first, err := store.CreateMedia(ctx, &models.MediaCreateRequest{
		Filename:     "a1b2.jpg",
		OriginalName: "hero.jpg",
		MimeType:     "image/jpeg",
		Size:         2048,
		URL:          "https://cdn.example.com/a1b2.jpg",
	})
	require.NoError(t, err)

	second, err := store.CreateMedia(ctx, &models.MediaCreateRequest{
		Filename:     "c3d4.png",
		OriginalName: "logo.png",
		MimeType:     "image/png",
		Size:         512,
		URL:          "https://cdn.example.com/c3d4.png",
	})
	require.NoError(t, err)

	all, err := store.Media(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "most recent upload first")

	byID, err := store.MediaByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "hero.jpg", byID.OriginalName)

	require.NoError(t, store.DeleteMedia(ctx, first.ID))
	assert.ErrorIs(t, store.DeleteMedia(ctx, first.ID), models.ErrNotFound)
}
