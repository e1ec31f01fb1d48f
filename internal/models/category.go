package models

// Category represents a news section articles are filed under
type Category struct {
	ID          int64  `db:"id"           json:"id"`
	Name        string `db:"name"         json:"name"`
	Slug        string `db:"slug"         json:"slug"`
	Color       string `db:"color"        json:"color"`
	Description string `db:"description"  json:"description"`
	ShowInMenu  bool   `db:"show_in_menu" json:"showInMenu"`
	SortOrder   int    `db:"sort_order"   json:"sortOrder"`
}

// CategoryCreateRequest represents the request payload for creating a category
type CategoryCreateRequest struct {
	Name        string `binding:"required,min=1,max=255" json:"name"`
	Slug        string `binding:"required,min=1,max=255" json:"slug"`
	Color       string `binding:"required,min=1,max=32"  json:"color"`
	Description string `binding:"max=1000"               json:"description"`
	ShowInMenu  *bool  `json:"showInMenu"`
	SortOrder   *int   `json:"sortOrder"`
}

// CategoryUpdateRequest represents the request payload for updating a category.
// Only non-nil fields are applied.
type CategoryUpdateRequest struct {
	Name        *string `binding:"omitempty,min=1,max=255" json:"name"`
	Slug        *string `binding:"omitempty,min=1,max=255" json:"slug"`
	Color       *string `binding:"omitempty,min=1,max=32"  json:"color"`
	Description *string `binding:"omitempty,max=1000"      json:"description"`
	ShowInMenu  *bool   `json:"showInMenu"`
	SortOrder   *int    `json:"sortOrder"`
}

// NewCategory builds a Category from the create request with defaults applied
// (showInMenu true, sortOrder 0). The ID is assigned by the store.
func (r *CategoryCreateRequest) NewCategory() Category {
	category := Category{
		Name:        r.Name,
		Slug:        r.Slug,
		Color:       r.Color,
		Description: r.Description,
		ShowInMenu:  true,
	}
	if r.ShowInMenu != nil {
		category.ShowInMenu = *r.ShowInMenu
	}
	if r.SortOrder != nil {
		category.SortOrder = *r.SortOrder
	}
	return category
}

// Validate validates the category create request
func (r *CategoryCreateRequest) Validate() error {
	return nil
}

// Validate validates the category update request
func (r *CategoryUpdateRequest) Validate() error {
	if r.Name == nil && r.Slug == nil && r.Color == nil &&
		r.Description == nil && r.ShowInMenu == nil && r.SortOrder == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}

// Apply merges the non-nil fields of the request into the category
func (r *CategoryUpdateRequest) Apply(category *Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Slug != nil {
		category.Slug = *r.Slug
	}
	if r.Color != nil {
		category.Color = *r.Color
	}
	if r.Description != nil {
		category.Description = *r.Description
	}
	if r.ShowInMenu != nil {
		category.ShowInMenu = *r.ShowInMenu
	}
	if r.SortOrder != nil {
		category.SortOrder = *r.SortOrder
	}
}
