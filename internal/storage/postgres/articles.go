package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
	"github.com/newsdesk/portal/internal/storage"
)

const articleColumns = `id, title, slug, excerpt, content, image_url, category_id, author,
	views, is_breaking, is_featured, language, seo_title, seo_description,
	published_at, created_at`

// articleJoinColumns selects an article together with its category, aliased
// so sqlx can scan the category into the nested struct of ArticleWithCategory.
const articleJoinColumns = `
	a.id, a.title, a.slug, a.excerpt, a.content, a.image_url, a.category_id,
	a.author, a.views, a.is_breaking, a.is_featured, a.language,
	a.seo_title, a.seo_description, a.published_at, a.created_at,
	c.id AS "category.id",
	c.name AS "category.name",
	c.slug AS "category.slug",
	c.color AS "category.color",
	c.description AS "category.description",
	c.show_in_menu AS "category.show_in_menu",
	c.sort_order AS "category.sort_order"`

const articleJoinFrom = `
	FROM articles a
	JOIN categories c ON c.id = a.category_id`

// articleOrder keeps listings newest first with a stable tie-breaker so
// limit/offset pagination never skips or repeats rows.
const articleOrder = " ORDER BY a.published_at DESC, a.id DESC"

// Articles retrieves articles joined with their category, newest first,
// optionally filtered by category and paginated per opts
func (s *Store) Articles(ctx context.Context, opts storage.ListArticlesOptions) ([]models.ArticleWithCategory, error) {
	opts.Normalize()

	articles := []models.ArticleWithCategory{}
	query := "SELECT" + articleJoinColumns + articleJoinFrom

	args := []any{}
	if opts.CategoryID != nil {
		query += " WHERE a.category_id = $1"
		args = append(args, *opts.CategoryID)
	}
	query += articleOrder
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, opts.Limit, opts.Offset)

	if err := s.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, nil
}

// ArticleByID retrieves an article by ID, joined with its category
func (s *Store) ArticleByID(ctx context.Context, id int64) (*models.ArticleWithCategory, error) {
	article := &models.ArticleWithCategory{}
	query := "SELECT" + articleJoinColumns + articleJoinFrom + " WHERE a.id = $1"

	err := s.db.GetContext(ctx, article, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

// ArticleBySlug retrieves an article by slug, joined with its category
func (s *Store) ArticleBySlug(ctx context.Context, slug string) (*models.ArticleWithCategory, error) {
	article := &models.ArticleWithCategory{}
	query := "SELECT" + articleJoinColumns + articleJoinFrom + " WHERE a.slug = $1"

	err := s.db.GetContext(ctx, article, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

// FeaturedArticles retrieves up to limit featured articles, newest first
func (s *Store) FeaturedArticles(ctx context.Context, limit int) ([]models.ArticleWithCategory, error) {
	if limit <= 0 {
		limit = storage.DefaultFeaturedLimit
	}
	return s.flaggedArticles(ctx, "a.is_featured = true", limit)
}

// BreakingNews retrieves up to limit breaking articles, newest first
func (s *Store) BreakingNews(ctx context.Context, limit int) ([]models.ArticleWithCategory, error) {
	if limit <= 0 {
		limit = storage.DefaultBreakingLimit
	}
	return s.flaggedArticles(ctx, "a.is_breaking = true", limit)
}

func (s *Store) flaggedArticles(ctx context.Context, cond string, limit int) ([]models.ArticleWithCategory, error) {
	articles := []models.ArticleWithCategory{}
	query := "SELECT" + articleJoinColumns + articleJoinFrom +
		" WHERE " + cond + articleOrder + " LIMIT $1"

	if err := s.db.SelectContext(ctx, &articles, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list flagged articles: %w", err)
	}

	return articles, nil
}

// CreateArticle creates a new article. A duplicate slug surfaces as
// ErrAlreadyExists; a category_id with no matching category row trips the
// foreign key and surfaces as ErrInvalidCategory.
func (s *Store) CreateArticle(ctx context.Context, req *models.ArticleCreateRequest) (*models.Article, error) {
	article := req.NewArticle(timeNow())

	query := fmt.Sprintf(`
		INSERT INTO articles (title, slug, excerpt, content, image_url, category_id, author,
			views, is_breaking, is_featured, language, seo_title, seo_description,
			published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s
	`, articleColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		article.Title, article.Slug, article.Excerpt, article.Content,
		article.ImageURL, article.CategoryID, article.Author, article.Views,
		article.IsBreaking, article.IsFeatured, article.Language,
		article.SeoTitle, article.SeoDescription,
		article.PublishedAt, article.CreatedAt,
	).StructScan(&article)

	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		if isPQError(err, pqForeignKeyViolation) {
			return nil, models.ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return &article, nil
}

// UpdateArticle applies the non-nil fields of the request to the article.
// published_at and created_at are never part of the update set.
func (s *Store) UpdateArticle(ctx context.Context, id int64, req *models.ArticleUpdateRequest) (*models.Article, error) {
	updates := make(map[string]any)

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.IsBreaking != nil {
		updates["is_breaking"] = *req.IsBreaking
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.SeoTitle != nil {
		updates["seo_title"] = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		updates["seo_description"] = *req.SeoDescription
	}

	query, args, err := buildUpdateQuery("articles", id, updates, articleColumns, false)
	if err != nil {
		return nil, err
	}

	article := &models.Article{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(article)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		if isPQError(err, pqForeignKeyViolation) {
			return nil, models.ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return article, nil
}

// DeleteArticle deletes an article by ID
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "articles", id)
}

// CountArticles counts articles under the same filter Articles applies
func (s *Store) CountArticles(ctx context.Context, categoryID *int64) (int64, error) {
	var count int64
	if categoryID != nil {
		err := s.db.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM articles WHERE category_id = $1", *categoryID)
		if err != nil {
			return 0, fmt.Errorf("failed to count articles: %w", err)
		}
		return count, nil
	}

	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
