package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
)

const mediaColumns = "id, filename, original_name, mime_type, size, url, alt, uploaded_at"

// Media retrieves all media records, most recently uploaded first
func (s *Store) Media(ctx context.Context) ([]models.Media, error) {
	media := []models.Media{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		ORDER BY uploaded_at DESC, id DESC
	`, mediaColumns)

	if err := s.db.SelectContext(ctx, &media, query); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	return media, nil
}

// MediaByID retrieves a media record by ID
func (s *Store) MediaByID(ctx context.Context, id int64) (*models.Media, error) {
	m := &models.Media{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		WHERE id = $1
	`, mediaColumns)

	err := s.db.GetContext(ctx, m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}

	return m, nil
}

// CreateMedia registers metadata for an uploaded asset
func (s *Store) CreateMedia(ctx context.Context, req *models.MediaCreateRequest) (*models.Media, error) {
	m := req.NewMedia(timeNow())

	query := fmt.Sprintf(`
		INSERT INTO media (filename, original_name, mime_type, size, url, alt, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, mediaColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		m.Filename, m.OriginalName, m.MimeType, m.Size, m.URL, m.Alt, m.UploadedAt,
	).StructScan(&m)

	if err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}

	return &m, nil
}

// DeleteMedia deletes a media record by ID
func (s *Store) DeleteMedia(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "media", id)
}
