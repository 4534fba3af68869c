package domain

import "errors"

// Domain-level errors
var (
	ErrToyNotFound      = errors.New("toy not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// ErrEmptySlug is returned when a name or slug reduces to an empty slug
var ErrEmptySlug = errors.New("slug must contain at least one letter or digit")
