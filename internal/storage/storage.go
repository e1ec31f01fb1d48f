// Package storage defines the persistence contract for the portal. Two
// implementations satisfy it: an in-memory store (storage/memory) and a
// PostgreSQL store (storage/postgres). Both must produce identical result
// shapes and ordering so the route layer can treat them interchangeably.
package storage

import (
	"context"

	"github.com/newsdesk/portal/internal/models"
)

// Default pagination and view caps
const (
	DefaultArticleLimit  = 50
	DefaultFeaturedLimit = 6
	DefaultBreakingLimit = 3
)

// ListArticlesOptions controls filtering and pagination for article listings.
// The filter is applied before pagination; CountArticles with the same
// CategoryID operates over the exact same filtered set.
type ListArticlesOptions struct {
	Limit      int
	Offset     int
	CategoryID *int64
}

// Normalize replaces missing or invalid values with the defaults
func (o *ListArticlesOptions) Normalize() {
	if o.Limit <= 0 {
		o.Limit = DefaultArticleLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

// Store is the authoritative gateway for all portal content. Lookups that
// find nothing return models.ErrNotFound; unique-constraint collisions return
// models.ErrAlreadyExists. Neither is a storage fault.
//
// Article reads always return ArticleWithCategory, ordered by publishedAt
// descending (id descending on ties) so pagination yields stable contiguous
// slices.
type Store interface {
	// Categories
	Categories(ctx context.Context) ([]models.Category, error)
	MenuCategories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryUpdateRequest) (*models.Category, error)
	// DeleteCategory rejects deletion with models.ErrCategoryInUse while
	// articles still reference the category.
	DeleteCategory(ctx context.Context, id int64) error

	// Articles
	Articles(ctx context.Context, opts ListArticlesOptions) ([]models.ArticleWithCategory, error)
	ArticleByID(ctx context.Context, id int64) (*models.ArticleWithCategory, error)
	ArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithCategory, error)
	FeaturedArticles(ctx context.Context, limit int) ([]models.ArticleWithCategory, error)
	BreakingNews(ctx context.Context, limit int) ([]models.ArticleWithCategory, error)
	CreateArticle(ctx context.Context, req *models.ArticleCreateRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, id int64, req *models.ArticleUpdateRequest) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	CountArticles(ctx context.Context, categoryID *int64) (int64, error)

	// Pages
	Pages(ctx context.Context) ([]models.Page, error)
	PageByID(ctx context.Context, id int64) (*models.Page, error)
	// PageBySlug returns the page regardless of publish state; the publish
	// gate for public reads is the caller's responsibility.
	PageBySlug(ctx context.Context, slug string) (*models.Page, error)
	CreatePage(ctx context.Context, req *models.PageCreateRequest) (*models.Page, error)
	UpdatePage(ctx context.Context, id int64, req *models.PageUpdateRequest) (*models.Page, error)
	DeletePage(ctx context.Context, id int64) error

	// Social settings
	SocialSettings(ctx context.Context, enabledOnly bool) ([]models.SocialSetting, error)
	SocialSettingByID(ctx context.Context, id int64) (*models.SocialSetting, error)
	CreateSocialSetting(ctx context.Context, req *models.SocialSettingCreateRequest) (*models.SocialSetting, error)
	UpdateSocialSetting(ctx context.Context, id int64, req *models.SocialSettingUpdateRequest) (*models.SocialSetting, error)
	DeleteSocialSetting(ctx context.Context, id int64) error

	// Site settings
	SiteSettings(ctx context.Context) ([]models.SiteSetting, error)
	SiteSettingByKey(ctx context.Context, key string) (*models.SiteSetting, error)
	// UpsertSiteSetting inserts a new row for an unknown key, or updates
	// value/type/description in place for an existing one.
	UpsertSiteSetting(ctx context.Context, req *models.SiteSettingUpsertRequest) (*models.SiteSetting, error)

	// Media
	Media(ctx context.Context) ([]models.Media, error)
	MediaByID(ctx context.Context, id int64) (*models.Media, error)
	CreateMedia(ctx context.Context, req *models.MediaCreateRequest) (*models.Media, error)
	DeleteMedia(ctx context.Context, id int64) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
	// Close releases the backing store's resources
	Close() error
}
