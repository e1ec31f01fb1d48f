// Package memory provides a map-backed implementation of storage.Store.
// It is used for tests and for running the portal without PostgreSQL;
// all state is lost on process exit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
)

// Store holds all portal content in process memory. A single RWMutex guards
// every map; operations are short and uncontended enough that finer locking
// is not worth the complexity.
type Store struct {
	mu sync.RWMutex

	categories     map[int64]models.Category
	articles       map[int64]models.Article
	pages          map[int64]models.Page
	socialSettings map[int64]models.SocialSetting
	siteSettings   map[int64]models.SiteSetting
	media          map[int64]models.Media

	nextID map[string]int64

	now func() time.Time
}

var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		categories:     make(map[int64]models.Category),
		articles:       make(map[int64]models.Article),
		pages:          make(map[int64]models.Page),
		socialSettings: make(map[int64]models.SocialSetting),
		siteSettings:   make(map[int64]models.SiteSetting),
		media:          make(map[int64]models.Media),
		nextID:         make(map[string]int64),
		now:            time.Now,
	}
}

// NewWithClock creates an in-memory store with a custom time source, for tests
func NewWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

func (s *Store) allocID(entity string) int64 {
	s.nextID[entity]++
	return s.nextID[entity]
}

// ====================
// Categories
// ====================

func sortCategories(list []models.Category) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].ID < list[j].ID
	})
}

// Categories returns all categories ordered by sortOrder, then id
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		list = append(list, c)
	}
	sortCategories(list)
	return list, nil
}

// MenuCategories returns categories flagged for the public navigation menu
func (s *Store) MenuCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.ShowInMenu {
			list = append(list, c)
		}
	}
	sortCategories(list)
	return list, nil
}

// CategoryByID retrieves a category by ID
func (s *Store) CategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

// CategoryBySlug retrieves a category by its slug
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrNotFound
}

// categoryConflicts reports a name or slug collision. Comparisons are exact,
// the same semantics as the database unique constraints.
func (s *Store) categoryConflicts(name, slug string, excludeID int64) bool {
	for _, c := range s.categories {
		if c.ID == excludeID {
			continue
		}
		if c.Name == name || c.Slug == slug {
			return true
		}
	}
	return false
}

// CreateCategory creates a new category, rejecting duplicate names and slugs
func (s *Store) CreateCategory(ctx context.Context, req *models.CategoryCreateRequest) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryConflicts(req.Name, req.Slug, 0) {
		return nil, models.ErrAlreadyExists
	}

	category := req.NewCategory()
	category.ID = s.allocID("category")
	s.categories[category.ID] = category
	return &category, nil
}

// UpdateCategory applies the non-nil fields of the request to the category
func (s *Store) UpdateCategory(ctx context.Context, id int64, req *models.CategoryUpdateRequest) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	updated := category
	req.Apply(&updated)
	if s.categoryConflicts(updated.Name, updated.Slug, id) {
		return nil, models.ErrAlreadyExists
	}

	s.categories[id] = updated
	return &updated, nil
}

// DeleteCategory removes a category. Deletion is rejected while articles
// still reference it.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return models.ErrNotFound
	}
	for _, a := range s.articles {
		if a.CategoryID == id {
			return models.ErrCategoryInUse
		}
	}
	delete(s.categories, id)
	return nil
}

// ====================
// Articles
// ====================

// sortArticlesNewestFirst orders by publishedAt descending with id as the
// tie-breaker so pagination always yields a stable contiguous slice.
func sortArticlesNewestFirst(list []models.Article) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PublishedAt.Equal(list[j].PublishedAt) {
			return list[i].PublishedAt.After(list[j].PublishedAt)
		}
		return list[i].ID > list[j].ID
	})
}

func (s *Store) withCategory(a models.Article) models.ArticleWithCategory {
	return models.ArticleWithCategory{
		Article:  a,
		Category: s.categories[a.CategoryID],
	}
}

func (s *Store) filteredArticles(categoryID *int64) []models.Article {
	list := make([]models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if categoryID != nil && a.CategoryID != *categoryID {
			continue
		}
		list = append(list, a)
	}
	return list
}

// Articles returns articles joined with their category, newest first,
// filtered and then paginated per opts.
func (s *Store) Articles(ctx context.Context, opts storage.ListArticlesOptions) ([]models.ArticleWithCategory, error) {
	opts.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.filteredArticles(opts.CategoryID)
	sortArticlesNewestFirst(list)

	if opts.Offset >= len(list) {
		return []models.ArticleWithCategory{}, nil
	}
	end := opts.Offset + opts.Limit
	if end > len(list) {
		end = len(list)
	}

	result := make([]models.ArticleWithCategory, 0, end-opts.Offset)
	for _, a := range list[opts.Offset:end] {
		result = append(result, s.withCategory(a))
	}
	return result, nil
}

// ArticleByID retrieves an article by ID, joined with its category
func (s *Store) ArticleByID(ctx context.Context, id int64) (*models.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	joined := s.withCategory(a)
	return &joined, nil
}

// ArticleBySlug retrieves an article by slug, joined with its category
func (s *Store) ArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			joined := s.withCategory(a)
			return &joined, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) flaggedArticles(limit int, flagged func(models.Article) bool) []models.ArticleWithCategory {
	list := make([]models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if flagged(a) {
			list = append(list, a)
		}
	}
	sortArticlesNewestFirst(list)

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	result := make([]models.ArticleWithCategory, 0, len(list))
	for _, a := range list {
		result = append(result, s.withCategory(a))
	}
	return result
}

// FeaturedArticles returns up to limit featured articles, newest first
func (s *Store) FeaturedArticles(ctx context.Context, limit int) ([]models.ArticleWithCategory, error) {
	if limit <= 0 {
		limit = storage.DefaultFeaturedLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flaggedArticles(limit, func(a models.Article) bool { return a.IsFeatured }), nil
}

// BreakingNews returns up to limit breaking articles, newest first
func (s *Store) BreakingNews(ctx context.Context, limit int) ([]models.ArticleWithCategory, error) {
	if limit <= 0 {
		limit = storage.DefaultBreakingLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flaggedArticles(limit, func(a models.Article) bool { return a.IsBreaking }), nil
}

func (s *Store) articleSlugTaken(slug string, excludeID int64) bool {
	for _, a := range s.articles {
		if a.ID != excludeID && a.Slug == slug {
			return true
		}
	}
	return false
}

// CreateArticle creates a new article. The referenced category must exist
// and the slug must be unused.
func (s *Store) CreateArticle(ctx context.Context, req *models.ArticleCreateRequest) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[req.CategoryID]; !ok {
		return nil, models.ErrInvalidCategory
	}
	if s.articleSlugTaken(req.Slug, 0) {
		return nil, models.ErrAlreadyExists
	}

	article := req.NewArticle(s.now())
	article.ID = s.allocID("article")
	s.articles[article.ID] = article
	return &article, nil
}

// UpdateArticle applies the non-nil fields of the request to the article.
// publishedAt and createdAt are never altered.
func (s *Store) UpdateArticle(ctx context.Context, id int64, req *models.ArticleUpdateRequest) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	updated := article
	req.Apply(&updated)
	if _, ok := s.categories[updated.CategoryID]; !ok {
		return nil, models.ErrInvalidCategory
	}
	if s.articleSlugTaken(updated.Slug, id) {
		return nil, models.ErrAlreadyExists
	}

	s.articles[id] = updated
	return &updated, nil
}

// DeleteArticle removes an article by ID
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

// CountArticles counts articles under the same filter predicate Articles uses
func (s *Store) CountArticles(ctx context.Context, categoryID *int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.filteredArticles(categoryID))), nil
}

// ====================
// Pages
// ====================

// Pages returns all pages, newest first
func (s *Store) Pages(ctx context.Context) ([]models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Page, 0, len(s.pages))
	for _, p := range s.pages {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// PageByID retrieves a page by ID
func (s *Store) PageByID(ctx context.Context, id int64) (*models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

// PageBySlug retrieves a page by slug regardless of publish state
func (s *Store) PageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) pageSlugTaken(slug string, excludeID int64) bool {
	for _, p := range s.pages {
		if p.ID != excludeID && p.Slug == slug {
			return true
		}
	}
	return false
}

// CreatePage creates a new static page
func (s *Store) CreatePage(ctx context.Context, req *models.PageCreateRequest) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pageSlugTaken(req.Slug, 0) {
		return nil, models.ErrAlreadyExists
	}

	page := req.NewPage(s.now())
	page.ID = s.allocID("page")
	s.pages[page.ID] = page
	return &page, nil
}

// UpdatePage applies the non-nil fields of the request and bumps updatedAt
func (s *Store) UpdatePage(ctx context.Context, id int64, req *models.PageUpdateRequest) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	updated := page
	req.Apply(&updated, s.now())
	if s.pageSlugTaken(updated.Slug, id) {
		return nil, models.ErrAlreadyExists
	}

	s.pages[id] = updated
	return &updated, nil
}

// DeletePage removes a page by ID
func (s *Store) DeletePage(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.pages, id)
	return nil
}

// ====================
// Social settings
// ====================

// SocialSettings returns social links ordered by sortOrder, optionally
// restricted to enabled entries
func (s *Store) SocialSettings(ctx context.Context, enabledOnly bool) ([]models.SocialSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.SocialSetting, 0, len(s.socialSettings))
	for _, setting := range s.socialSettings {
		if enabledOnly && !setting.IsEnabled {
			continue
		}
		list = append(list, setting)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// SocialSettingByID retrieves a social link by ID
func (s *Store) SocialSettingByID(ctx context.Context, id int64) (*models.SocialSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	setting, ok := s.socialSettings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &setting, nil
}

// platformTaken reports an exact platform collision, the same semantics as
// the database unique constraint.
func (s *Store) platformTaken(platform string, excludeID int64) bool {
	for _, setting := range s.socialSettings {
		if setting.ID != excludeID && setting.Platform == platform {
			return true
		}
	}
	return false
}

// CreateSocialSetting creates a new social link; the platform must be unused
func (s *Store) CreateSocialSetting(ctx context.Context, req *models.SocialSettingCreateRequest) (*models.SocialSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.platformTaken(req.Platform, 0) {
		return nil, models.ErrAlreadyExists
	}

	setting := req.NewSocialSetting()
	setting.ID = s.allocID("social_setting")
	s.socialSettings[setting.ID] = setting
	return &setting, nil
}

// UpdateSocialSetting applies the non-nil fields of the request
func (s *Store) UpdateSocialSetting(ctx context.Context, id int64, req *models.SocialSettingUpdateRequest) (*models.SocialSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setting, ok := s.socialSettings[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	updated := setting
	req.Apply(&updated)
	if s.platformTaken(updated.Platform, id) {
		return nil, models.ErrAlreadyExists
	}

	s.socialSettings[id] = updated
	return &updated, nil
}

// DeleteSocialSetting removes a social link by ID
func (s *Store) DeleteSocialSetting(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.socialSettings[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.socialSettings, id)
	return nil
}

// ====================
// Site settings
// ====================

// SiteSettings returns all settings ordered by key
func (s *Store) SiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.SiteSetting, 0, len(s.siteSettings))
	for _, setting := range s.siteSettings {
		list = append(list, setting)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list, nil
}

// SiteSettingByKey retrieves a setting by its unique key
func (s *Store) SiteSettingByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, setting := range s.siteSettings {
		if setting.Key == key {
			found := setting
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

// UpsertSiteSetting inserts a new row or updates the existing one in place,
// keyed on the setting key
func (s *Store) UpsertSiteSetting(ctx context.Context, req *models.SiteSettingUpsertRequest) (*models.SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := req.NewSiteSetting()
	for id, existing := range s.siteSettings {
		if existing.Key == req.Key {
			existing.Value = incoming.Value
			existing.Type = incoming.Type
			existing.Description = incoming.Description
			s.siteSettings[id] = existing
			return &existing, nil
		}
	}

	incoming.ID = s.allocID("site_setting")
	s.siteSettings[incoming.ID] = incoming
	return &incoming, nil
}

// ====================
// Media
// ====================

// Media returns all media records, most recently uploaded first
func (s *Store) Media(ctx context.Context) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Media, 0, len(s.media))
	for _, m := range s.media {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].UploadedAt.Equal(list[j].UploadedAt) {
			return list[i].UploadedAt.After(list[j].UploadedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// MediaByID retrieves a media record by ID
func (s *Store) MediaByID(ctx context.Context, id int64) (*models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &m, nil
}

// CreateMedia registers metadata for an uploaded asset
func (s *Store) CreateMedia(ctx context.Context, req *models.MediaCreateRequest) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := req.NewMedia(s.now())
	m.ID = s.allocID("media")
	s.media[m.ID] = m
	return &m, nil
}

// DeleteMedia removes a media record by ID
func (s *Store) DeleteMedia(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.media, id)
	return nil
}

// Ping always succeeds for the in-memory store
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *Store) Close() error {
	return nil
}
