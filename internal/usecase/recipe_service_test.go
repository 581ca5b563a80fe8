package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cozinhapp/backend/internal/domain"
)

// fakeCatalogClient counts fetches and can simulate failures and slowness.
type fakeCatalogClient struct {
	recipes      []domain.Recipe
	foods        []domain.Food
	recipesErr   error
	foodsErr     error
	fetchDelay   time.Duration
	recipesCalls int32
	foodsCalls   int32
}

func (f *fakeCatalogClient) FetchRecipes(ctx context.Context) ([]domain.Recipe, error) {
	atomic.AddInt32(&f.recipesCalls, 1)
	if f.fetchDelay > 0 {
		time.Sleep(f.fetchDelay)
	}
	if f.recipesErr != nil {
		return nil, f.recipesErr
	}
	return f.recipes, nil
}

func (f *fakeCatalogClient) FetchFoods(ctx context.Context) ([]domain.Food, error) {
	atomic.AddInt32(&f.foodsCalls, 1)
	if f.foodsErr != nil {
		return nil, f.foodsErr
	}
	return f.foods, nil
}

// fakeCache is a minimal map-backed CacheRepository without TTL handling.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (f *fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return nil, domain.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

func newTestService(client *fakeCatalogClient) *RecipeService {
	return NewRecipeService(newFakeCache(), client, RecipeServiceConfig{})
}

func TestSearch_EmptySelectionSkipsCatalog(t *testing.T) {
	client := &fakeCatalogClient{recipes: testCatalog()}
	svc := newTestService(client)

	results, err := svc.Search(context.Background(), nil, domain.ModeFlexible)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if n := atomic.LoadInt32(&client.recipesCalls); n != 0 {
		t.Errorf("catalog fetched %d times for empty selection, want 0", n)
	}
}

func TestSearch_CachesCatalogAcrossCalls(t *testing.T) {
	client := &fakeCatalogClient{recipes: testCatalog()}
	svc := newTestService(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Search(ctx, []string{"arroz"}, domain.ModeFlexible); err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
	}

	if n := atomic.LoadInt32(&client.recipesCalls); n != 1 {
		t.Errorf("catalog fetched %d times, want 1 (cached after first)", n)
	}
}

func TestSearch_FetchFailureIsNotCached(t *testing.T) {
	client := &fakeCatalogClient{recipesErr: errors.New("boom")}
	svc := newTestService(client)
	ctx := context.Background()

	_, err := svc.Search(ctx, []string{"arroz"}, domain.ModeFlexible)
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("error = %v, want ErrCatalogUnavailable", err)
	}

	// The failure must not commit to the cache: the next search retries the
	// fetch and succeeds.
	client.recipesErr = nil
	client.recipes = testCatalog()

	results, err := svc.Search(ctx, []string{"arroz"}, domain.ModeFlexible)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(results) == 0 {
		t.Error("retry returned no results, want matches from recovered catalog")
	}
	if n := atomic.LoadInt32(&client.recipesCalls); n != 2 {
		t.Errorf("catalog fetched %d times, want 2 (failure then retry)", n)
	}
}

func TestSearch_ConcurrentLoadsCollapse(t *testing.T) {
	client := &fakeCatalogClient{recipes: testCatalog(), fetchDelay: 50 * time.Millisecond}
	svc := newTestService(client)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Search(context.Background(), []string{"arroz"}, domain.ModeFlexible); err != nil {
				t.Errorf("concurrent search failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&client.recipesCalls); n != 1 {
		t.Errorf("catalog fetched %d times under concurrency, want 1 (single flight)", n)
	}
}

func TestGetRecipe(t *testing.T) {
	client := &fakeCatalogClient{recipes: testCatalog()}
	svc := newTestService(client)
	ctx := context.Background()

	t.Run("finds recipe by id", func(t *testing.T) {
		recipe, err := svc.GetRecipe(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recipe.Name != "Salmão Grelhado" {
			t.Errorf("Name = %q, want %q", recipe.Name, "Salmão Grelhado")
		}
	})

	t.Run("unknown id returns ErrRecipeNotFound", func(t *testing.T) {
		_, err := svc.GetRecipe(ctx, 999)
		if !errors.Is(err, domain.ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})
}

func TestSuggest(t *testing.T) {
	client := &fakeCatalogClient{foods: []domain.Food{
		{ID: 1, Name: "Açúcar"},
		{ID: 2, Name: "Arroz"},
		{ID: 3, Name: "Feijão"},
		{ID: 4, Name: "Azeite"},
	}}
	svc := newTestService(client)
	ctx := context.Background()

	t.Run("accent-insensitive prefix match", func(t *testing.T) {
		got, err := svc.Suggest(ctx, "acu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != "Açúcar" {
			t.Errorf("Suggest(%q) = %v, want [Açúcar]", "acu", got)
		}
	})

	t.Run("multiple matches in catalog order", func(t *testing.T) {
		got, err := svc.Suggest(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Açúcar", "Arroz", "Azeite"}
		if len(got) != len(want) {
			t.Fatalf("Suggest(%q) = %v, want %v", "a", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Suggest(%q)[%d] = %q, want %q", "a", i, got[i], want[i])
			}
		}
	})

	t.Run("empty prefix yields nothing without fetching", func(t *testing.T) {
		fresh := newTestService(&fakeCatalogClient{})
		got, err := fresh.Suggest(ctx, "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Suggest of blank prefix = %v, want empty", got)
		}
	})

	t.Run("foods catalog cached after first call", func(t *testing.T) {
		if _, err := svc.Suggest(ctx, "fei"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := atomic.LoadInt32(&client.foodsCalls); n != 1 {
			t.Errorf("foods catalog fetched %d times, want 1", n)
		}
	})
}
