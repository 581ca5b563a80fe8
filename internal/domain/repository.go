package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for fetching the static JSON catalogs.
type CatalogClient interface {
	FetchRecipes(ctx context.Context) ([]Recipe, error)
	FetchFoods(ctx context.Context) ([]Food, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
