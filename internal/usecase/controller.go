package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cozinhapp/backend/internal/domain"
)

// defaultDebounceDelay defers recomputation long enough to collapse a rapid
// burst of selection changes into a single filtering pass.
const defaultDebounceDelay = 300 * time.Millisecond

// ResultsFunc receives the recomputed result set after a debounced filtering
// pass. A catalog failure delivers an empty set, same as a zero-match result.
type ResultsFunc func([]domain.Recipe)

// SearchController owns the transient search state of one session: the
// ordered ingredient selection, the match mode, and the pending debounced
// recomputation. Every mutation schedules a recompute; only the last change
// in a burst actually runs.
type SearchController struct {
	service   *RecipeService
	onResults ResultsFunc
	delay     time.Duration

	mu        sync.Mutex
	selection []string
	mode      domain.MatchMode
	timer     *time.Timer
	closed    bool
}

// NewSearchController creates a controller delivering result sets to
// onResults. A non-positive delay falls back to the default.
func NewSearchController(service *RecipeService, delay time.Duration, onResults ResultsFunc) *SearchController {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return &SearchController{
		service:   service,
		onResults: onResults,
		delay:     delay,
	}
}

// AddIngredient appends an ingredient to the selection. Duplicates (by raw
// value) are ignored.
func (c *SearchController) AddIngredient(item string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.selection {
		if existing == item {
			return
		}
	}
	c.selection = append(c.selection, item)
	c.scheduleLocked()
}

// RemoveIngredient removes an ingredient from the selection. Removing an
// absent item is a no-op and does not trigger a recompute.
func (c *SearchController) RemoveIngredient(item string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.selection {
		if existing == item {
			c.selection = append(c.selection[:i], c.selection[i+1:]...)
			c.scheduleLocked()
			return
		}
	}
}

// SetMode switches between flexible and exact matching.
func (c *SearchController) SetMode(mode domain.MatchMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == mode {
		return
	}
	c.mode = mode
	c.scheduleLocked()
}

// Selection returns a copy of the current selection in insertion order.
func (c *SearchController) Selection() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.selection))
	copy(out, c.selection)
	return out
}

// Mode returns the current match mode.
func (c *SearchController) Mode() domain.MatchMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Close cancels any pending recomputation. Further mutations are ignored.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// scheduleLocked defers a recompute by the debounce delay, superseding any
// pending one. Callers must hold c.mu.
func (c *SearchController) scheduleLocked() {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.recompute)
}

// recompute runs the filter against a snapshot of the current state and
// delivers the result. A failed catalog load degrades to an empty result set;
// the error is only logged.
func (c *SearchController) recompute() {
	c.mu.Lock()
	selection := make([]string, len(c.selection))
	copy(selection, c.selection)
	mode := c.mode
	c.mu.Unlock()

	results, err := c.service.Search(context.Background(), selection, mode)
	if err != nil {
		log.Printf("[SEARCH] recompute failed, returning empty results: %v", err)
		results = nil
	}

	if c.onResults != nil {
		c.onResults(results)
	}
}
