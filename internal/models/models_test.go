package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/newsdesk/portal/internal/models"
)

func boolPtr(b bool) *bool           { return &b }
func strPtr(s string) *string        { return &s }
func timePtr(v time.Time) *time.Time { return &v }

func TestArticleCreateRequest_Defaults(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	req := &models.ArticleCreateRequest{
		Title:      "T",
		Slug:       "t",
		Excerpt:    "e",
		Content:    "c",
		ImageURL:   "https://example.com/i.jpg",
		CategoryID: 1,
		Author:     "a",
	}

	article := req.NewArticle(now)
	assert.Equal(t, models.DefaultLanguage, article.Language)
	assert.False(t, article.IsBreaking)
	assert.False(t, article.IsFeatured)
	assert.Zero(t, article.Views)
	assert.True(t, article.PublishedAt.Equal(now), "publishedAt falls back to now")
	assert.True(t, article.CreatedAt.Equal(now))
}

func TestArticleCreateRequest_ExplicitValues(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	published := now.Add(-48 * time.Hour)
	req := &models.ArticleCreateRequest{
		Title:       "T",
		Slug:        "t",
		Excerpt:     "e",
		Content:     "c",
		ImageURL:    "https://example.com/i.jpg",
		CategoryID:  1,
		Author:      "a",
		IsBreaking:  boolPtr(true),
		Language:    strPtr("fr"),
		PublishedAt: timePtr(published),
	}

	article := req.NewArticle(now)
	assert.True(t, article.IsBreaking)
	assert.Equal(t, "fr", article.Language)
	assert.True(t, article.PublishedAt.Equal(published))
	assert.True(t, article.CreatedAt.Equal(now))
}

func TestArticleUpdateRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&models.ArticleUpdateRequest{}).Validate(), models.ErrNoFieldsToUpdate)
	assert.NoError(t, (&models.ArticleUpdateRequest{Title: strPtr("x")}).Validate())
}

func TestArticleUpdateRequest_ApplyPartial(t *testing.T) {
	article := models.Article{
		Title:    "Old",
		Slug:     "old",
		Author:   "Original",
		Language: "en",
		Views:    7,
	}

	req := &models.ArticleUpdateRequest{Title: strPtr("New")}
	req.Apply(&article)

	assert.Equal(t, "New", article.Title)
	assert.Equal(t, "old", article.Slug)
	assert.Equal(t, "Original", article.Author)
	assert.Equal(t, 7, article.Views, "views is never touched by updates")
}

func TestCategoryCreateRequest_Defaults(t *testing.T) {
	req := &models.CategoryCreateRequest{Name: "Tech", Slug: "tech", Color: "#fff"}
	category := req.NewCategory()
	assert.True(t, category.ShowInMenu, "showInMenu defaults to true")
	assert.Zero(t, category.SortOrder)

	req.ShowInMenu = boolPtr(false)
	assert.False(t, req.NewCategory().ShowInMenu)
}

func TestCategoryUpdateRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&models.CategoryUpdateRequest{}).Validate(), models.ErrNoFieldsToUpdate)
	assert.NoError(t, (&models.CategoryUpdateRequest{ShowInMenu: boolPtr(true)}).Validate())
}

func TestPageRequest_Semantics(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	req := &models.PageCreateRequest{Title: "About", Slug: "about", Content: "x"}

	page := req.NewPage(now)
	assert.True(t, page.IsPublished, "pages default to published")
	assert.True(t, page.CreatedAt.Equal(now))
	assert.True(t, page.UpdatedAt.Equal(now))

	later := now.Add(time.Hour)
	update := &models.PageUpdateRequest{Content: strPtr("y")}
	update.Apply(&page, later)
	assert.Equal(t, "y", page.Content)
	assert.True(t, page.UpdatedAt.Equal(later), "updates refresh updatedAt")
	assert.True(t, page.CreatedAt.Equal(now))
}

func TestSocialSettingCreateRequest_Defaults(t *testing.T) {
	req := &models.SocialSettingCreateRequest{
		Platform: "twitter", URL: "https://twitter.com/x", IconClass: "fa-twitter",
	}
	setting := req.NewSocialSetting()
	assert.True(t, setting.IsEnabled, "social links default to enabled")
}

func TestSiteSettingUpsertRequest_TypeDefault(t *testing.T) {
	req := &models.SiteSettingUpsertRequest{Key: "k", Value: "v"}
	assert.Equal(t, models.SettingTypeText, req.NewSiteSetting().Type)

	req.Type = models.SettingTypeJSON
	assert.Equal(t, models.SettingTypeJSON, req.NewSiteSetting().Type)
}
