package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cozinhapp/backend/internal/domain"
	"github.com/cozinhapp/backend/internal/textnorm"
)

// Suggest returns food names from the foods catalog whose normalized form
// starts with the normalized prefix, in catalog order. Typing "acu" suggests
// "Açúcar". An empty or whitespace-only prefix yields no suggestions.
func (s *RecipeService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	normalized := textnorm.Normalize(prefix)
	if normalized == "" {
		return nil, nil
	}

	foods, err := s.loadFoods(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, food := range foods {
		if strings.HasPrefix(textnorm.Normalize(food.Name), normalized) {
			names = append(names, food.Name)
		}
	}
	return names, nil
}

// loadFoods returns the cached foods catalog, fetching it on first use.
func (s *RecipeService) loadFoods(ctx context.Context) ([]domain.Food, error) {
	if cached, err := s.cache.Get(ctx, foodsCacheKey); err == nil {
		if foods, ok := cached.([]domain.Food); ok {
			return foods, nil
		}
	}

	value, err, _ := s.group.Do(foodsCacheKey, func() (interface{}, error) {
		if cached, err := s.cache.Get(ctx, foodsCacheKey); err == nil {
			if foods, ok := cached.([]domain.Food); ok {
				return foods, nil
			}
		}

		foods, err := s.catalog.FetchFoods(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}

		if err := s.cache.Set(ctx, foodsCacheKey, foods, s.cacheTTL); err != nil {
			log.Printf("[FOODS] failed to cache catalog: %v", err)
		}
		return foods, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.Food), nil
}
