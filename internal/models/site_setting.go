package models

// Setting value types. Advisory only: the value column is text and no runtime
// validation is performed against the declared type.
const (
	SettingTypeText    = "text"
	SettingTypeNumber  = "number"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// SiteSetting represents a single key/value configuration entry
type SiteSetting struct {
	ID          int64  `db:"id"          json:"id"`
	Key         string `db:"key"         json:"key"`
	Value       string `db:"value"       json:"value"`
	Type        string `db:"type"        json:"type"`
	Description string `db:"description" json:"description"`
}

// SiteSettingUpsertRequest represents the request payload for the
// create-or-update-by-key operation. Writing an existing key updates its
// value, type and description in place.
type SiteSettingUpsertRequest struct {
	Key         string `binding:"required,min=1,max=255" json:"key"`
	Value       string `json:"value"`
	Type        string `binding:"omitempty,oneof=text number boolean json" json:"type"`
	Description string `binding:"max=1000"               json:"description"`
}

// NewSiteSetting builds a SiteSetting from the upsert request with the type
// defaulted to "text".
func (r *SiteSettingUpsertRequest) NewSiteSetting() SiteSetting {
	setting := SiteSetting{
		Key:         r.Key,
		Value:       r.Value,
		Type:        r.Type,
		Description: r.Description,
	}
	if setting.Type == "" {
		setting.Type = SettingTypeText
	}
	return setting
}

// Validate validates the site setting upsert request
func (r *SiteSettingUpsertRequest) Validate() error {
	return nil
}
