package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/portal/internal/api"
	"github.com/newsdesk/portal/internal/config"
	"github.com/newsdesk/portal/internal/logger"
	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
	"github.com/newsdesk/portal/internal/storage/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, storage.Store) {
	t.Helper()

	store := memory.New()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
	}

	router := api.NewRouter(store, cfg, logger.NewNopLogger(), nil)
	return router.Engine(), store
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedCategory(t *testing.T, store storage.Store, name, slug string) *models.Category {
	t.Helper()
	category, err := store.CreateCategory(context.Background(), &models.CategoryCreateRequest{
		Name: name, Slug: slug, Color: "#3B82F6",
	})
	require.NoError(t, err)
	return category
}

func seedArticle(t *testing.T, store storage.Store, slug string, categoryID int64, publishedAt time.Time) *models.Article {
	t.Helper()
	article, err := store.CreateArticle(context.Background(), &models.ArticleCreateRequest{
		Title:       "Title " + slug,
		Slug:        slug,
		Excerpt:     "e",
		Content:     "c",
		ImageURL:    "https://example.com/" + slug + ".jpg",
		CategoryID:  categoryID,
		Author:      "Reporter",
		PublishedAt: &publishedAt,
	})
	require.NoError(t, err)
	return article
}

type listEnvelope struct {
	Articles   []models.ArticleWithCategory `json:"articles"`
	TotalCount int64                        `json:"totalCount"`
	HasMore    bool                         `json:"hasMore"`
}

func TestListArticles_Envelope(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedArticle(t, store, fmt.Sprintf("a-%d", i), category.ID, base.Add(time.Duration(i)*time.Hour))
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/articles?limit=2&offset=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeBody[listEnvelope](t, rec)
	assert.Len(t, envelope.Articles, 2)
	assert.Equal(t, int64(5), envelope.TotalCount)
	assert.True(t, envelope.HasMore)
	assert.Equal(t, "a-4", envelope.Articles[0].Slug, "newest first")
	assert.Equal(t, "tech", envelope.Articles[0].Category.Slug)

	rec = doJSON(t, engine, http.MethodGet, "/api/articles?limit=2&offset=4", nil)
	envelope = decodeBody[listEnvelope](t, rec)
	assert.Len(t, envelope.Articles, 1)
	assert.False(t, envelope.HasMore)
}

func TestListArticles_BadLimitFallsBack(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")
	seedArticle(t, store, "a", category.ID, time.Now())

	rec := doJSON(t, engine, http.MethodGet, "/api/articles?limit=banana&offset=-3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeBody[listEnvelope](t, rec)
	assert.Len(t, envelope.Articles, 1)
}

func TestListArticlesByCategory(t *testing.T) {
	engine, store := newTestServer(t)
	tech := seedCategory(t, store, "Tech", "tech")
	sports := seedCategory(t, store, "Sports", "sports")
	seedArticle(t, store, "t-1", tech.ID, time.Now())
	seedArticle(t, store, "s-1", sports.ID, time.Now())
	seedArticle(t, store, "s-2", sports.ID, time.Now())

	rec := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/categories/%d/articles", sports.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeBody[listEnvelope](t, rec)
	assert.Len(t, envelope.Articles, 2)
	assert.Equal(t, int64(2), envelope.TotalCount)

	rec = doJSON(t, engine, http.MethodGet, "/api/categories/banana/articles", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetArticleBySlug(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")
	seedArticle(t, store, "launch-day", category.ID, time.Now())

	rec := doJSON(t, engine, http.MethodGet, "/api/articles/launch-day", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	article := decodeBody[models.ArticleWithCategory](t, rec)
	assert.Equal(t, "launch-day", article.Slug)
	assert.Equal(t, "Tech", article.Category.Name)

	rec = doJSON(t, engine, http.MethodGet, "/api/articles/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateArticle(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")

	payload := gin.H{
		"title":      "Launch",
		"slug":       "launch",
		"excerpt":    "e",
		"content":    "c",
		"imageUrl":   "https://example.com/i.jpg",
		"categoryId": category.ID,
		"author":     "Reporter",
	}

	rec := doJSON(t, engine, http.MethodPost, "/api/admin/articles", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Article](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "en", created.Language)

	// Duplicate slug conflicts
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/articles", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown category is a client error
	payload["slug"] = "other"
	payload["categoryId"] = 9999
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/articles", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing required fields fail binding
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/articles", gin.H{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteArticle(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")
	article := seedArticle(t, store, "launch", category.ID, time.Now())

	rec := doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", article.ID),
		gin.H{"title": "Updated"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Article](t, rec)
	assert.Equal(t, "Updated", updated.Title)

	// Empty update payload is rejected
	rec = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", article.ID), gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", article.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", article.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/admin/articles/banana", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeaturedAndBreakingEndpoints(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "News", "news")

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		req := &models.ArticleCreateRequest{
			Title:       fmt.Sprintf("F %d", i),
			Slug:        fmt.Sprintf("f-%d", i),
			Excerpt:     "e",
			Content:     "c",
			ImageURL:    "https://example.com/i.jpg",
			CategoryID:  category.ID,
			Author:      "Reporter",
			IsFeatured:  boolPtr(true),
			IsBreaking:  boolPtr(i < 4),
			PublishedAt: timePtr(base.Add(time.Duration(i) * time.Hour)),
		}
		_, err := store.CreateArticle(context.Background(), req)
		require.NoError(t, err)
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decodeBody[[]models.ArticleWithCategory](t, rec)
	assert.Len(t, featured, 6, "featured default cap")

	rec = doJSON(t, engine, http.MethodGet, "/api/breaking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	breaking := decodeBody[[]models.ArticleWithCategory](t, rec)
	assert.Len(t, breaking, 3, "breaking default cap")

	rec = doJSON(t, engine, http.MethodGet, "/api/featured?limit=2", nil)
	featured = decodeBody[[]models.ArticleWithCategory](t, rec)
	assert.Len(t, featured, 2)
}

func TestCategoryEndpoints(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")

	rec := doJSON(t, engine, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody[[]models.Category](t, rec)
	assert.Len(t, categories, 1)

	rec = doJSON(t, engine, http.MethodGet, "/api/categories/tech", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/categories/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Duplicate name conflicts
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/categories",
		gin.H{"name": "Tech", "slug": "tech-2", "color": "#fff"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Delete is rejected while articles reference the category
	seedArticle(t, store, "a", category.ID, time.Now())
	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", category.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMenuCategories(t *testing.T) {
	engine, store := newTestServer(t)
	seedCategory(t, store, "Visible", "visible")
	_, err := store.CreateCategory(context.Background(), &models.CategoryCreateRequest{
		Name: "Hidden", Slug: "hidden", Color: "#000", ShowInMenu: boolPtr(false),
	})
	require.NoError(t, err)

	rec := doJSON(t, engine, http.MethodGet, "/api/menu-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody[[]models.Category](t, rec)
	require.Len(t, categories, 1)
	assert.Equal(t, "visible", categories[0].Slug)
}

func TestPublicCategoryMutations(t *testing.T) {
	engine, store := newTestServer(t)
	category := seedCategory(t, store, "Tech", "tech")

	rec := doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID),
		gin.H{"color": "#000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Category](t, rec)
	assert.Equal(t, "#000000", updated.Color)

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPagePublishGate(t *testing.T) {
	engine, store := newTestServer(t)

	_, err := store.CreatePage(context.Background(), &models.PageCreateRequest{
		Title: "About", Slug: "about", Content: "x",
	})
	require.NoError(t, err)
	draft, err := store.CreatePage(context.Background(), &models.PageCreateRequest{
		Title: "Draft", Slug: "draft", Content: "x", IsPublished: boolPtr(false),
	})
	require.NoError(t, err)

	rec := doJSON(t, engine, http.MethodGet, "/api/pages/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unpublished pages are invisible to the public route
	rec = doJSON(t, engine, http.MethodGet, "/api/pages/draft", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// But the admin route sees them
	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/admin/pages/%d", draft.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/pages", nil)
	pages := decodeBody[[]models.Page](t, rec)
	assert.Len(t, pages, 2)
}

func TestSocialSettingsVisibility(t *testing.T) {
	engine, store := newTestServer(t)

	_, err := store.CreateSocialSetting(context.Background(), &models.SocialSettingCreateRequest{
		Platform: "twitter", URL: "https://twitter.com/x", IconClass: "fa-twitter",
	})
	require.NoError(t, err)
	_, err = store.CreateSocialSetting(context.Background(), &models.SocialSettingCreateRequest{
		Platform: "facebook", URL: "https://facebook.com/x", IconClass: "fa-facebook",
		IsEnabled: boolPtr(false),
	})
	require.NoError(t, err)

	rec := doJSON(t, engine, http.MethodGet, "/api/social-settings", nil)
	public := decodeBody[[]models.SocialSetting](t, rec)
	require.Len(t, public, 1)
	assert.Equal(t, "twitter", public[0].Platform)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/social-settings", nil)
	all := decodeBody[[]models.SocialSetting](t, rec)
	assert.Len(t, all, 2)

	// Duplicate platform conflicts
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/social-settings",
		gin.H{"platform": "twitter", "url": "https://x.com", "iconClass": "fa-x"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSiteSettingUpsertEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/admin/site-settings",
		gin.H{"key": "site_title", "value": "The Portal"})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody[models.SiteSetting](t, rec)
	assert.Equal(t, "text", first.Type)

	rec = doJSON(t, engine, http.MethodPost, "/api/admin/site-settings",
		gin.H{"key": "site_title", "value": "Renamed"})
	second := decodeBody[models.SiteSetting](t, rec)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.Value)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/site-settings/site_title", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/site-settings/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Invalid type is rejected by binding
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/site-settings",
		gin.H{"key": "k", "type": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaEndpoints(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/admin/media", gin.H{
		"filename":     "a.jpg",
		"originalName": "hero.jpg",
		"mimeType":     "image/jpeg",
		"size":         1024,
		"url":          "https://cdn.example.com/a.jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Media](t, rec)

	rec = doJSON(t, engine, http.MethodGet, "/api/admin/media", nil)
	media := decodeBody[[]models.Media](t, rec)
	assert.Len(t, media, 1)

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/admin/media/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Zero-byte assets are legitimate
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/media", gin.H{
		"filename":     "empty.txt",
		"originalName": "empty.txt",
		"mimeType":     "text/plain",
		"size":         0,
		"url":          "https://cdn.example.com/empty.txt",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	empty := decodeBody[models.Media](t, rec)
	assert.Zero(t, empty.Size)

	// Negative sizes are not
	rec = doJSON(t, engine, http.MethodPost, "/api/admin/media", gin.H{
		"filename":     "bad.txt",
		"originalName": "bad.txt",
		"mimeType":     "text/plain",
		"size":         -1,
		"url":          "https://cdn.example.com/bad.txt",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestErrorBodyShape(t *testing.T) {
	engine, _ := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/articles/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	_, hasMessage := body["message"]
	assert.True(t, hasMessage, "error responses carry a message field")
}

func boolPtr(b bool) *bool           { return &b }
func timePtr(v time.Time) *time.Time { return &v }
