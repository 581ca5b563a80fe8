package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cozinhapp/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check and sitemap
	router.GET("/health", handler.HealthCheck)
	router.GET("/sitemap.xml", handler.Sitemap)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", handler.SearchRecipes)
			recipes.GET("/:id", handler.GetRecipe)
			recipes.GET("/:id/schema", handler.GetRecipeSchema)
		}

		foods := v1.Group("/foods")
		{
			foods.GET("/suggest", handler.SuggestFoods)
		}
	}

	return router
}
