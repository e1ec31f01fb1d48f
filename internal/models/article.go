package models

import "time"

// DefaultLanguage is the language articles are published in unless stated otherwise.
const DefaultLanguage = "en"

// Article represents a single news story
type Article struct {
	ID             int64     `db:"id"              json:"id"`
	Title          string    `db:"title"           json:"title"`
	Slug           string    `db:"slug"            json:"slug"`
	Excerpt        string    `db:"excerpt"         json:"excerpt"`
	Content        string    `db:"content"         json:"content"`
	ImageURL       string    `db:"image_url"       json:"imageUrl"`
	CategoryID     int64     `db:"category_id"     json:"categoryId"`
	Author         string    `db:"author"          json:"author"`
	Views          int       `db:"views"           json:"views"`
	IsBreaking     bool      `db:"is_breaking"     json:"isBreaking"`
	IsFeatured     bool      `db:"is_featured"     json:"isFeatured"`
	Language       string    `db:"language"        json:"language"`
	SeoTitle       string    `db:"seo_title"       json:"seoTitle"`
	SeoDescription string    `db:"seo_description" json:"seoDescription"`
	PublishedAt    time.Time `db:"published_at"    json:"publishedAt"`
	CreatedAt      time.Time `db:"created_at"      json:"createdAt"`
}

// ArticleWithCategory is an Article joined with its full Category record,
// the shape returned by all article read operations.
type ArticleWithCategory struct {
	Article
	Category Category `db:"category" json:"category"`
}

// ArticleCreateRequest represents the request payload for creating an article
type ArticleCreateRequest struct {
	Title          string     `binding:"required,min=1,max=500" json:"title"`
	Slug           string     `binding:"required,min=1,max=500" json:"slug"`
	Excerpt        string     `binding:"required"               json:"excerpt"`
	Content        string     `binding:"required"               json:"content"`
	ImageURL       string     `binding:"required,max=2000"      json:"imageUrl"`
	CategoryID     int64      `binding:"required,gt=0"          json:"categoryId"`
	Author         string     `binding:"required,min=1,max=255" json:"author"`
	IsBreaking     *bool      `json:"isBreaking"`
	IsFeatured     *bool      `json:"isFeatured"`
	Language       *string    `binding:"omitempty,min=2,max=10" json:"language"`
	SeoTitle       string     `binding:"max=500"                json:"seoTitle"`
	SeoDescription string     `binding:"max=1000"               json:"seoDescription"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

// ArticleUpdateRequest represents the request payload for updating an article.
// Only non-nil fields are applied; publishedAt and createdAt are never mutated
// by an update, and views is a stored counter no endpoint increments.
type ArticleUpdateRequest struct {
	Title          *string `binding:"omitempty,min=1,max=500" json:"title"`
	Slug           *string `binding:"omitempty,min=1,max=500" json:"slug"`
	Excerpt        *string `json:"excerpt"`
	Content        *string `json:"content"`
	ImageURL       *string `binding:"omitempty,max=2000"      json:"imageUrl"`
	CategoryID     *int64  `binding:"omitempty,gt=0"          json:"categoryId"`
	Author         *string `binding:"omitempty,min=1,max=255" json:"author"`
	IsBreaking     *bool   `json:"isBreaking"`
	IsFeatured     *bool   `json:"isFeatured"`
	Language       *string `binding:"omitempty,min=2,max=10"  json:"language"`
	SeoTitle       *string `binding:"omitempty,max=500"       json:"seoTitle"`
	SeoDescription *string `binding:"omitempty,max=1000"      json:"seoDescription"`
}

// NewArticle builds an Article from the create request with defaults applied:
// publishedAt falls back to now, createdAt is always now, flags default to
// false and language to "en". The ID is assigned by the store.
func (r *ArticleCreateRequest) NewArticle(now time.Time) Article {
	article := Article{
		Title:          r.Title,
		Slug:           r.Slug,
		Excerpt:        r.Excerpt,
		Content:        r.Content,
		ImageURL:       r.ImageURL,
		CategoryID:     r.CategoryID,
		Author:         r.Author,
		Language:       DefaultLanguage,
		SeoTitle:       r.SeoTitle,
		SeoDescription: r.SeoDescription,
		PublishedAt:    now,
		CreatedAt:      now,
	}
	if r.IsBreaking != nil {
		article.IsBreaking = *r.IsBreaking
	}
	if r.IsFeatured != nil {
		article.IsFeatured = *r.IsFeatured
	}
	if r.Language != nil {
		article.Language = *r.Language
	}
	if r.PublishedAt != nil && !r.PublishedAt.IsZero() {
		article.PublishedAt = *r.PublishedAt
	}
	return article
}

// Validate validates the article create request
func (r *ArticleCreateRequest) Validate() error {
	return nil
}

// Validate validates the article update request
func (r *ArticleUpdateRequest) Validate() error {
	if r.Title == nil && r.Slug == nil && r.Excerpt == nil && r.Content == nil &&
		r.ImageURL == nil && r.CategoryID == nil && r.Author == nil &&
		r.IsBreaking == nil && r.IsFeatured == nil && r.Language == nil &&
		r.SeoTitle == nil && r.SeoDescription == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}

// Apply merges the non-nil fields of the request into the article
func (r *ArticleUpdateRequest) Apply(article *Article) {
	if r.Title != nil {
		article.Title = *r.Title
	}
	if r.Slug != nil {
		article.Slug = *r.Slug
	}
	if r.Excerpt != nil {
		article.Excerpt = *r.Excerpt
	}
	if r.Content != nil {
		article.Content = *r.Content
	}
	if r.ImageURL != nil {
		article.ImageURL = *r.ImageURL
	}
	if r.CategoryID != nil {
		article.CategoryID = *r.CategoryID
	}
	if r.Author != nil {
		article.Author = *r.Author
	}
	if r.IsBreaking != nil {
		article.IsBreaking = *r.IsBreaking
	}
	if r.IsFeatured != nil {
		article.IsFeatured = *r.IsFeatured
	}
	if r.Language != nil {
		article.Language = *r.Language
	}
	if r.SeoTitle != nil {
		article.SeoTitle = *r.SeoTitle
	}
	if r.SeoDescription != nil {
		article.SeoDescription = *r.SeoDescription
	}
}
