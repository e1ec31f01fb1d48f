package models

import "errors"

// Common errors
var (
	// ErrNotFound is returned when a lookup by id, slug or key finds nothing
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a unique constraint would be violated
	// (duplicate slug, category name, social platform or setting key)
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrNoFieldsToUpdate is returned when no fields are provided for an update
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidCategory is returned when an article references a category that does not exist
	ErrInvalidCategory = errors.New("category does not exist")

	// ErrCategoryInUse is returned when deleting a category that still has articles.
	// Deletion is rejected rather than cascading or orphaning the articles.
	ErrCategoryInUse = errors.New("category has dependent articles")
)
