package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
)

const siteSettingColumns = `id, key, value, type, description`

// SiteSettings retrieves all settings ordered by key
func (s *Store) SiteSettings(ctx context.Context) ([]models.SiteSetting, error) {
	settings := []models.SiteSetting{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM site_settings
		ORDER BY key ASC
	`, siteSettingColumns)

	if err := s.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("failed to list site settings: %w", err)
	}

	return settings, nil
}

// SiteSettingByKey retrieves a setting by its unique key
func (s *Store) SiteSettingByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	setting := &models.SiteSetting{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM site_settings
		WHERE key = $1
	`, siteSettingColumns)

	err := s.db.GetContext(ctx, setting, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site setting: %w", err)
	}

	return setting, nil
}

// UpsertSiteSetting inserts a new setting or, when the key already exists,
// replaces its value, type and description in place
func (s *Store) UpsertSiteSetting(ctx context.Context, req *models.SiteSettingUpsertRequest) (*models.SiteSetting, error) {
	setting := req.NewSiteSetting()

	query := fmt.Sprintf(`
		INSERT INTO site_settings (key, value, type, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			type = EXCLUDED.type,
			description = EXCLUDED.description
		RETURNING %s
	`, siteSettingColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		setting.Key, setting.Value, setting.Type, setting.Description,
	).StructScan(&setting)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert site setting: %w", err)
	}

	return &setting, nil
}
