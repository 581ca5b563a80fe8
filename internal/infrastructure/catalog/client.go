package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/cozinhapp/backend/internal/domain"
)

// Client fetches the static JSON catalog files (recipes and foods) over HTTP.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	recipesPath string
	foodsPath   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a catalog client. The catalogs are static files behind a
// CDN; the limiter only guards against pathological retry loops.
func NewClient(baseURL, recipesPath, foodsPath string) *Client {
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		recipesPath: recipesPath,
		foodsPath:   foodsPath,
		rateLimiter: limiter,
	}
}

// SetDebug toggles per-request debug logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchRecipes downloads and decodes the recipe catalog. Records that fail to
// decode or lack an id and name are skipped with a warning; the rest of the
// catalog still loads.
func (c *Client) FetchRecipes(ctx context.Context) ([]domain.Recipe, error) {
	body, err := c.fetch(ctx, c.recipesPath)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode recipe catalog: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(raw))
	for i, record := range raw {
		var recipe domain.Recipe
		if err := json.Unmarshal(record, &recipe); err != nil {
			log.Printf("[CATALOG] skipping malformed recipe record %d: %v", i, err)
			continue
		}
		if recipe.ID == 0 || recipe.Name == "" {
			log.Printf("[CATALOG] skipping recipe record %d: missing id or name", i)
			continue
		}
		recipes = append(recipes, recipe)
	}

	if c.debug {
		log.Printf("[CATALOG] loaded %d of %d recipe records", len(recipes), len(raw))
	}
	return recipes, nil
}

// FetchFoods downloads and decodes the foods catalog used for autocomplete.
func (c *Client) FetchFoods(ctx context.Context) ([]domain.Food, error) {
	body, err := c.fetch(ctx, c.foodsPath)
	if err != nil {
		return nil, err
	}

	var foods []domain.Food
	if err := json.Unmarshal(body, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods catalog: %w", err)
	}

	if c.debug {
		log.Printf("[CATALOG] loaded %d food records", len(foods))
	}
	return foods, nil
}

// fetch executes a GET with retries for transient failures.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if c.debug {
			log.Printf("[CATALOG] attempt %d for %s failed: %v", attempt, reqURL, err)
		}
		if ctx.Err() != nil {
			return nil, lastErr
		}
		time.Sleep(exponentialBackoff(attempt))
	}

	return nil, lastErr
}

// doRequest executes a single HTTP GET and reads the body.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Cozinhapp/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// exponentialBackoff returns the wait before the next retry: 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}
