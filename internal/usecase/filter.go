package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/cozinhapp/backend/internal/domain"
	"github.com/cozinhapp/backend/internal/textnorm"
)

// FilterRecipes returns the recipes that qualify for the given ingredient
// selection under the given mode, preserving catalog order. An empty
// selection always yields an empty result, in both modes.
func (m *Matcher) FilterRecipes(recipes []domain.Recipe, selection []string, mode domain.MatchMode) []domain.Recipe {
	if len(selection) == 0 {
		return nil
	}

	var matched []domain.Recipe
	for i := range recipes {
		recipe := &recipes[i]

		var qualifies bool
		if mode == domain.ModeExact {
			qualifies = m.matchesExact(recipe, selection)
		} else {
			qualifies = m.matchesFlexible(recipe, selection)
		}

		if qualifies {
			matched = append(matched, *recipe)
		}
	}

	if m.enableDebugLogging {
		log.Printf("[FILTER] mode=%s selection=%d recipes=%d matched=%d",
			mode, len(selection), len(recipes), len(matched))
	}

	return matched
}

// matchesExact requires the selection and the recipe's ingredient list to
// cover each other completely: same count, every selected item matched by
// some ingredient, every ingredient matched by some selected item.
func (m *Matcher) matchesExact(recipe *domain.Recipe, selection []string) bool {
	if len(recipe.Ingredients) != len(selection) {
		return false
	}

	for _, selected := range selection {
		covered := false
		for _, ing := range recipe.Ingredients {
			if m.IngredientMatches(selected, ing.Item) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	for _, ing := range recipe.Ingredients {
		covered := false
		for _, selected := range selection {
			if m.IngredientMatches(selected, ing.Item) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}

// matchesFlexible counts how many selected items match anywhere in the
// recipe's searchable text and compares the count against the quorum.
func (m *Matcher) matchesFlexible(recipe *domain.Recipe, selection []string) bool {
	corpus := searchCorpus(recipe)

	matches := 0
	for _, selected := range selection {
		if m.anyWordMatches(textnorm.Words(selected), corpus) {
			matches++
		}
	}

	return matches >= m.quorum(len(selection))
}

// quorum is the minimum number of selected items that must match. Small
// selections only need a single hit; larger ones need 70% coverage rounded up.
func (m *Matcher) quorum(selectionSize int) int {
	if selectionSize <= 2 {
		return 1
	}
	return int(math.Ceil(m.quorumRatio * float64(selectionSize)))
}

// searchCorpus builds the normalized word list a recipe is searched against:
// its name, every ingredient item, every tag and the category.
func searchCorpus(recipe *domain.Recipe) []string {
	parts := make([]string, 0, len(recipe.Ingredients)+len(recipe.Tags)+2)
	parts = append(parts, recipe.Name)
	for _, ing := range recipe.Ingredients {
		parts = append(parts, ing.Item)
	}
	parts = append(parts, recipe.Tags...)
	parts = append(parts, recipe.Category)

	return textnorm.Words(strings.Join(parts, " "))
}
