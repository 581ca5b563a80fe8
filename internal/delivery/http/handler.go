package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cozinhapp/backend/internal/domain"
)

// RecipeService is the usecase surface the HTTP layer depends on.
type RecipeService interface {
	Search(ctx context.Context, selection []string, mode domain.MatchMode) ([]domain.Recipe, error)
	Recipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service   RecipeService
	publicURL string
}

// NewHandler creates a new HTTP handler
func NewHandler(service RecipeService, publicURL string) *Handler {
	return &Handler{
		service:   service,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cozinhapp-backend",
		"version": "1.0.0",
	})
}

// SearchRecipes filters the catalog by the selected ingredients.
// GET /api/v1/recipes?ingredients=arroz,feijao&mode=flexible
//
// A catalog fetch failure degrades to an empty result set: the client shows
// the same "no recipes found" state either way, and the next request retries
// the fetch since nothing was cached.
func (h *Handler) SearchRecipes(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe service not configured"})
		return
	}

	selection := splitIngredients(c.Query("ingredients"))
	mode := domain.ParseMatchMode(c.Query("mode"))

	recipes, err := h.service.Search(c.Request.Context(), selection, mode)
	if err != nil {
		log.Printf("[HTTP] recipe search failed, degrading to empty result: %v", err)
		recipes = nil
	}

	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
		"mode":    mode.String(),
	})
}

// GetRecipe returns a single recipe by id.
// GET /api/v1/recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe service not configured"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id must be an integer"})
		return
	}

	recipe, err := h.service.GetRecipe(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case err != nil:
		log.Printf("[HTTP] recipe lookup failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
	default:
		c.JSON(http.StatusOK, recipe)
	}
}

// GetRecipeSchema returns the schema.org JSON-LD document for a recipe.
// GET /api/v1/recipes/:id/schema
func (h *Handler) GetRecipeSchema(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe service not configured"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id must be an integer"})
		return
	}

	recipe, err := h.service.GetRecipe(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case err != nil:
		log.Printf("[HTTP] recipe schema lookup failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
	default:
		c.Header("Content-Type", "application/ld+json")
		c.JSON(http.StatusOK, BuildRecipeJSONLD(recipe))
	}
}

// SuggestFoods returns autocomplete suggestions for the ingredient input.
// GET /api/v1/foods/suggest?q=acu
//
// Failures degrade to an empty suggestion list; autocomplete is best effort.
func (h *Handler) SuggestFoods(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe service not configured"})
		return
	}

	suggestions, err := h.service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("[HTTP] food suggestion failed, degrading to empty result: %v", err)
		suggestions = nil
	}

	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// splitIngredients parses the comma-separated ingredients parameter,
// dropping empty entries but otherwise preserving the user's text.
func splitIngredients(raw string) []string {
	if raw == "" {
		return nil
	}

	var selection []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			selection = append(selection, part)
		}
	}
	return selection
}
