package models

import "time"

// Page represents a static informational page (about us, privacy policy, ...).
// Public routes only serve pages with IsPublished set; admin routes see all.
type Page struct {
	ID             int64     `db:"id"              json:"id"`
	Title          string    `db:"title"           json:"title"`
	Slug           string    `db:"slug"            json:"slug"`
	Content        string    `db:"content"         json:"content"`
	SeoTitle       string    `db:"seo_title"       json:"seoTitle"`
	SeoDescription string    `db:"seo_description" json:"seoDescription"`
	IsPublished    bool      `db:"is_published"    json:"isPublished"`
	CreatedAt      time.Time `db:"created_at"      json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updatedAt"`
}

// PageCreateRequest represents the request payload for creating a page
type PageCreateRequest struct {
	Title          string `binding:"required,min=1,max=500" json:"title"`
	Slug           string `binding:"required,min=1,max=500" json:"slug"`
	Content        string `binding:"required"               json:"content"`
	SeoTitle       string `binding:"max=500"                json:"seoTitle"`
	SeoDescription string `binding:"max=1000"               json:"seoDescription"`
	IsPublished    *bool  `json:"isPublished"`
}

// PageUpdateRequest represents the request payload for updating a page.
// Only non-nil fields are applied; updatedAt is refreshed on every update.
type PageUpdateRequest struct {
	Title          *string `binding:"omitempty,min=1,max=500" json:"title"`
	Slug           *string `binding:"omitempty,min=1,max=500" json:"slug"`
	Content        *string `json:"content"`
	SeoTitle       *string `binding:"omitempty,max=500"       json:"seoTitle"`
	SeoDescription *string `binding:"omitempty,max=1000"      json:"seoDescription"`
	IsPublished    *bool   `json:"isPublished"`
}

// NewPage builds a Page from the create request with defaults applied
// (isPublished true). The ID is assigned by the store.
func (r *PageCreateRequest) NewPage(now time.Time) Page {
	page := Page{
		Title:          r.Title,
		Slug:           r.Slug,
		Content:        r.Content,
		SeoTitle:       r.SeoTitle,
		SeoDescription: r.SeoDescription,
		IsPublished:    true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if r.IsPublished != nil {
		page.IsPublished = *r.IsPublished
	}
	return page
}

// Validate validates the page create request
func (r *PageCreateRequest) Validate() error {
	return nil
}

// Validate validates the page update request
func (r *PageUpdateRequest) Validate() error {
	if r.Title == nil && r.Slug == nil && r.Content == nil &&
		r.SeoTitle == nil && r.SeoDescription == nil && r.IsPublished == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}

// Apply merges the non-nil fields of the request into the page and bumps updatedAt
func (r *PageUpdateRequest) Apply(page *Page, now time.Time) {
	if r.Title != nil {
		page.Title = *r.Title
	}
	if r.Slug != nil {
		page.Slug = *r.Slug
	}
	if r.Content != nil {
		page.Content = *r.Content
	}
	if r.SeoTitle != nil {
		page.SeoTitle = *r.SeoTitle
	}
	if r.SeoDescription != nil {
		page.SeoDescription = *r.SeoDescription
	}
	if r.IsPublished != nil {
		page.IsPublished = *r.IsPublished
	}
	page.UpdatedAt = now
}
