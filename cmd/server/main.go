package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cozinhapp/backend/config"
	httpDelivery "github.com/cozinhapp/backend/internal/delivery/http"
	"github.com/cozinhapp/backend/internal/infrastructure/cache"
	"github.com/cozinhapp/backend/internal/infrastructure/catalog"
	"github.com/cozinhapp/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Cozinhapp Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (%s, %s)", cfg.Catalog.BaseURL, cfg.Catalog.RecipesPath, cfg.Catalog.FoodsPath)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.RecipesPath, cfg.Catalog.FoodsPath)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	// Initialize usecase layer
	recipeService := usecase.NewRecipeService(
		memoryCache,
		catalogClient,
		usecase.RecipeServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Matcher: usecase.MatcherConfig{
				MinContainmentLength: cfg.Matching.MinContainmentLength,
				MinSimilarityLength:  cfg.Matching.MinSimilarityLength,
				SimilarityThreshold:  cfg.Matching.SimilarityThreshold,
				QuorumRatio:          cfg.Matching.QuorumRatio,
				EnableDebugLogging:   cfg.Matching.EnableDebugLogging,
			},
		},
	)

	log.Printf("Matching: containment>=%d, similarity>=%d@%.1f, quorum=%.0f%%, debug=%v",
		cfg.Matching.MinContainmentLength,
		cfg.Matching.MinSimilarityLength,
		cfg.Matching.SimilarityThreshold,
		cfg.Matching.QuorumRatio*100,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recipeService, cfg.Server.PublicURL)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
