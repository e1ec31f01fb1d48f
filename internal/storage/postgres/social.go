package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/portal/internal/models"
)

const socialColumns = "id, platform, url, icon_class, is_enabled, sort_order"

// SocialSettings retrieves social links ordered by sortOrder, optionally
// restricted to enabled entries
func (s *Store) SocialSettings(ctx context.Context, enabledOnly bool) ([]models.SocialSetting, error) {
	settings := []models.SocialSetting{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM social_settings
	`, socialColumns)

	if enabledOnly {
		query += " WHERE is_enabled = true"
	}
	query += " ORDER BY sort_order ASC, id ASC"

	if err := s.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("failed to list social settings: %w", err)
	}

	return settings, nil
}

// SocialSettingByID retrieves a social link by ID
func (s *Store) SocialSettingByID(ctx context.Context, id int64) (*models.SocialSetting, error) {
	setting := &models.SocialSetting{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM social_settings
		WHERE id = $1
	`, socialColumns)

	err := s.db.GetContext(ctx, setting, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get social setting: %w", err)
	}

	return setting, nil
}

// CreateSocialSetting creates a new social link. The platform column is
// unique, so a duplicate surfaces as ErrAlreadyExists.
func (s *Store) CreateSocialSetting(ctx context.Context, req *models.SocialSettingCreateRequest) (*models.SocialSetting, error) {
	setting := req.NewSocialSetting()

	query := fmt.Sprintf(`
		INSERT INTO social_settings (platform, url, icon_class, is_enabled, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, socialColumns)

	err := s.db.QueryRowxContext(
		ctx, query,
		setting.Platform, setting.URL, setting.IconClass,
		setting.IsEnabled, setting.SortOrder,
	).StructScan(&setting)

	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create social setting: %w", err)
	}

	return &setting, nil
}

// UpdateSocialSetting applies the non-nil fields of the request
func (s *Store) UpdateSocialSetting(ctx context.Context, id int64, req *models.SocialSettingUpdateRequest) (*models.SocialSetting, error) {
	updates := make(map[string]any)

	if req.Platform != nil {
		updates["platform"] = *req.Platform
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.IconClass != nil {
		updates["icon_class"] = *req.IconClass
	}
	if req.IsEnabled != nil {
		updates["is_enabled"] = *req.IsEnabled
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	query, args, err := buildUpdateQuery("social_settings", id, updates, socialColumns, false)
	if err != nil {
		return nil, err
	}

	setting := &models.SocialSetting{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(setting)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		if isPQError(err, pqUniqueViolation) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update social setting: %w", err)
	}

	return setting, nil
}

// DeleteSocialSetting deletes a social link by ID
func (s *Store) DeleteSocialSetting(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "social_settings", id)
}
