package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/cozinhapp/backend/internal/domain"
)

// BuildRecipeJSONLD maps a recipe to a schema.org Recipe document, the same
// structured data the web pages embed for search engines. Durations use the
// ISO 8601 PT{m}M form.
func BuildRecipeJSONLD(recipe *domain.Recipe) map[string]interface{} {
	ingredients := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, strings.TrimSpace(ing.Quantity+" "+ing.Item))
	}

	instructions := make([]map[string]interface{}, 0, len(recipe.Instructions))
	for i, step := range recipe.Instructions {
		instructions = append(instructions, map[string]interface{}{
			"@type":    "HowToStep",
			"position": i + 1,
			"text":     step,
		})
	}

	return map[string]interface{}{
		"@context":         "https://schema.org",
		"@type":            "Recipe",
		"name":             recipe.Name,
		"description":      recipe.Description,
		"recipeIngredient": ingredients,
		"nutrition": map[string]interface{}{
			"@type":               "NutritionInformation",
			"calories":            fmt.Sprintf("%g cal", recipe.Calories),
			"proteinContent":      fmt.Sprintf("%gg", recipe.Nutrition.Protein),
			"carbohydrateContent": fmt.Sprintf("%gg", recipe.Nutrition.Carbohydrate),
		},
		"recipeInstructions": instructions,
		"prepTime":           fmt.Sprintf("PT%dM", recipe.PrepMinutes),
		"cookTime":           fmt.Sprintf("PT%dM", recipe.CookMinutes),
		"totalTime":          fmt.Sprintf("PT%dM", recipe.TotalMinutes()),
		"recipeYield":        recipe.Servings,
		"author": map[string]interface{}{
			"@type": "Organization",
			"name":  "Cozinhapp",
		},
		"datePublished":  time.Now().UTC().Format(time.RFC3339),
		"recipeCategory": recipe.Category,
		"recipeCuisine":  "Brasileira",
		"keywords":       strings.Join(recipe.Tags, ", "),
	}
}
