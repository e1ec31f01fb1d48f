package models

// SocialSetting represents a configured social-media link.
// The public list only exposes enabled entries.
type SocialSetting struct {
	ID        int64  `db:"id"         json:"id"`
	Platform  string `db:"platform"   json:"platform"`
	URL       string `db:"url"        json:"url"`
	IconClass string `db:"icon_class" json:"iconClass"`
	IsEnabled bool   `db:"is_enabled" json:"isEnabled"`
	SortOrder int    `db:"sort_order" json:"sortOrder"`
}

// SocialSettingCreateRequest represents the request payload for creating a social link
type SocialSettingCreateRequest struct {
	Platform  string `binding:"required,min=1,max=100" json:"platform"`
	URL       string `binding:"required,max=2000"      json:"url"`
	IconClass string `binding:"required,max=255"       json:"iconClass"`
	IsEnabled *bool  `json:"isEnabled"`
	SortOrder *int   `json:"sortOrder"`
}

// SocialSettingUpdateRequest represents the request payload for updating a social link
type SocialSettingUpdateRequest struct {
	Platform  *string `binding:"omitempty,min=1,max=100" json:"platform"`
	URL       *string `binding:"omitempty,max=2000"      json:"url"`
	IconClass *string `binding:"omitempty,max=255"       json:"iconClass"`
	IsEnabled *bool   `json:"isEnabled"`
	SortOrder *int    `json:"sortOrder"`
}

// NewSocialSetting builds a SocialSetting from the create request with
// defaults applied (isEnabled true, sortOrder 0).
func (r *SocialSettingCreateRequest) NewSocialSetting() SocialSetting {
	setting := SocialSetting{
		Platform:  r.Platform,
		URL:       r.URL,
		IconClass: r.IconClass,
		IsEnabled: true,
	}
	if r.IsEnabled != nil {
		setting.IsEnabled = *r.IsEnabled
	}
	if r.SortOrder != nil {
		setting.SortOrder = *r.SortOrder
	}
	return setting
}

// Validate validates the social setting create request
func (r *SocialSettingCreateRequest) Validate() error {
	return nil
}

// Validate validates the social setting update request
func (r *SocialSettingUpdateRequest) Validate() error {
	if r.Platform == nil && r.URL == nil && r.IconClass == nil &&
		r.IsEnabled == nil && r.SortOrder == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}

// Apply merges the non-nil fields of the request into the setting
func (r *SocialSettingUpdateRequest) Apply(setting *SocialSetting) {
	if r.Platform != nil {
		setting.Platform = *r.Platform
	}
	if r.URL != nil {
		setting.URL = *r.URL
	}
	if r.IconClass != nil {
		setting.IconClass = *r.IconClass
	}
	if r.IsEnabled != nil {
		setting.IsEnabled = *r.IsEnabled
	}
	if r.SortOrder != nil {
		setting.SortOrder = *r.SortOrder
	}
}
