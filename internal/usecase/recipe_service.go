package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cozinhapp/backend/internal/domain"
)

// Cache keys for the two catalog files. Each is fetched at most once per
// cache lifetime; a failed fetch is not cached, so the next request retries.
const (
	recipesCacheKey = "catalog:recipes"
	foodsCacheKey   = "catalog:foods"
)

// RecipeServiceConfig holds configuration for the recipe service
type RecipeServiceConfig struct {
	CacheTTL time.Duration
	Matcher  MatcherConfig
}

// RecipeService serves recipe search, lookup and ingredient suggestions on
// top of the static JSON catalogs. The catalogs are loaded lazily and cached;
// concurrent loads of the same catalog collapse into a single fetch.
type RecipeService struct {
	cache    domain.CacheRepository
	catalog  domain.CatalogClient
	matcher  *Matcher
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewRecipeService creates a recipe service with dependencies.
func NewRecipeService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	config RecipeServiceConfig,
) *RecipeService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &RecipeService{
		cache:    cache,
		catalog:  catalog,
		matcher:  NewMatcher(config.Matcher),
		cacheTTL: cacheTTL,
	}
}

// Search returns the recipes matching the ingredient selection under the
// given mode, in catalog order. An empty selection returns an empty result
// without touching the catalog.
func (s *RecipeService) Search(ctx context.Context, selection []string, mode domain.MatchMode) ([]domain.Recipe, error) {
	if len(selection) == 0 {
		return nil, nil
	}

	recipes, err := s.loadRecipes(ctx)
	if err != nil {
		return nil, err
	}

	return s.matcher.FilterRecipes(recipes, selection, mode), nil
}

// Recipes returns the full catalog in catalog order.
func (s *RecipeService) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.loadRecipes(ctx)
}

// GetRecipe returns the recipe with the given id.
func (s *RecipeService) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	recipes, err := s.loadRecipes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

// loadRecipes returns the cached recipe catalog, fetching it on first use.
func (s *RecipeService) loadRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if cached, err := s.cache.Get(ctx, recipesCacheKey); err == nil {
		if recipes, ok := cached.([]domain.Recipe); ok {
			return recipes, nil
		}
	}

	value, err, _ := s.group.Do(recipesCacheKey, func() (interface{}, error) {
		// Re-check under the group: a concurrent caller may have committed
		// the catalog between our cache miss and entering the fetch.
		if cached, err := s.cache.Get(ctx, recipesCacheKey); err == nil {
			if recipes, ok := cached.([]domain.Recipe); ok {
				return recipes, nil
			}
		}

		recipes, err := s.catalog.FetchRecipes(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}

		if err := s.cache.Set(ctx, recipesCacheKey, recipes, s.cacheTTL); err != nil {
			log.Printf("[RECIPES] failed to cache catalog: %v", err)
		}
		return recipes, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.Recipe), nil
}
