package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe id is not in the catalog
	ErrRecipeNotFound = errors.New("recipe not found in catalog")

	// ErrCatalogUnavailable is returned when the catalog fetch fails
	ErrCatalogUnavailable = errors.New("catalog fetch failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
