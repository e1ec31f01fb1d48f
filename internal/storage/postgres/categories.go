package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
)

const categoryColumns = "id, name, slug, color, description, show_in_menu, sort_order"

// Categories retrieves all categories ordered by sortOrder, then id
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		ORDER BY sort_order ASC, id ASC
	`, categoryColumns)

	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// MenuCategories retrieves the categories flagged for the navigation menu
func (s *Store) MenuCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE show_in_menu = true
		ORDER BY sort_order ASC, id ASC
	`, categoryColumns)

	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}

	return categories, nil
}

// CategoryByID retrieves a category by ID
func (s *Store) CategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE id = $1
	`, categoryColumns)

	err := s.db.GetContext(ctx, category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// CategoryBySlug retrieves a category by its slug
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category := &models.Category{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE slug = $1
	`, categoryColumns)

	err := s.db.GetContext(ctx, category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// CreateCategory creates a new category. Duplicate names and slugs surface
// as ErrAlreadyExists via the unique constraints.
func (s *Store) CreateCategory(ctx context.Context, req *models.CategoryCreateRequest) (*models.Category, error) {
	category := req.NewCategory()

	query := fmt.Sprintf(`
		INSERT INTO categories (name, slug, color, description, show_in_menu, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, categoryColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		category.Name, category.Slug, category.Color,
		category.Description, category.ShowInMenu, category.SortOrder,
	).StructScan(&category)

	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// UpdateCategory applies the non-nil fields of the request to the category
func (s *Store) UpdateCategory(ctx context.Context, id int64, req *models.CategoryUpdateRequest) (*models.Category, error) {
	updates := make(map[string]any)

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ShowInMenu != nil {
		updates["show_in_menu"] = *req.ShowInMenu
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	query, args, err := buildUpdateQuery("categories", id, updates, categoryColumns, false)
	if err != nil {
		return nil, err
	}

	category := &models.Category{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory deletes a category. The FK from articles is RESTRICT, so a
// category still referenced by articles comes back as ErrCategoryInUse.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	err := s.deleteByID(ctx, "categories", id)
	if err != nil && isPQError(err, pqForeignKeyViolation) {
		return models.ErrCategoryInUse
	}
	return err
}
