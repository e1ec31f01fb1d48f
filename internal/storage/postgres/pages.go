package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
)

const pageColumns = `id, title, slug, content, seo_title, seo_description,
	is_published, created_at, updated_at`

// Pages retrieves all pages, newest first
func (s *Store) Pages(ctx context.Context) ([]models.Page, error) {
	pages := []models.Page{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM pages
		ORDER BY created_at DESC, id DESC
	`, pageColumns)

	if err := s.db.SelectContext(ctx, &pages, query); err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	return pages, nil
}

// PageByID retrieves a page by ID
func (s *Store) PageByID(ctx context.Context, id int64) (*models.Page, error) {
	page := &models.Page{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM pages
		WHERE id = $1
	`, pageColumns)

	err := s.db.GetContext(ctx, page, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return page, nil
}

// PageBySlug retrieves a page by slug regardless of publish state
func (s *Store) PageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page := &models.Page{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM pages
		WHERE slug = $1
	`, pageColumns)

	err := s.db.GetContext(ctx, page, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return page, nil
}

// CreatePage creates a new static page
func (s *Store) CreatePage(ctx context.Context, req *models.PageCreateRequest) (*models.Page, error) {
	page := req.NewPage(timeNow())

	query := fmt.Sprintf(`
		INSERT INTO pages (title, slug, content, seo_title, seo_description,
			is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, pageColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		page.Title, page.Slug, page.Content, page.SeoTitle, page.SeoDescription,
		page.IsPublished, page.CreatedAt, page.UpdatedAt,
	).StructScan(&page)

	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &page, nil
}

// UpdatePage applies the non-nil fields of the request and refreshes updated_at
func (s *Store) UpdatePage(ctx context.Context, id int64, req *models.PageUpdateRequest) (*models.Page, error) {
	updates := make(map[string]any)

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.SeoTitle != nil {
		updates["seo_title"] = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		updates["seo_description"] = *req.SeoDescription
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	query, args, err := buildUpdateQuery("pages", id, updates, pageColumns, true)
	if err != nil {
		return nil, err
	}

	page := &models.Page{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(page)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

// DeletePage deletes a page by ID
func (s *Store) DeletePage(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "pages", id)
}
