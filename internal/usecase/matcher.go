package usecase

import (
	"strings"

	"github.com/cozinhapp/backend/internal/textnorm"
)

// Matching thresholds. Containment needs at least 3 characters so that very
// short tokens ("de", "ou") cannot match inside longer words; the similarity
// gate only considers tokens of 4+ characters.
const (
	defaultMinContainmentLength = 3
	defaultMinSimilarityLength  = 4
	defaultSimilarityThreshold  = 0.6
	defaultQuorumRatio          = 0.7
)

// MatcherConfig holds configuration for the ingredient matcher
type MatcherConfig struct {
	MinContainmentLength int
	MinSimilarityLength  int
	SimilarityThreshold  float64
	QuorumRatio          float64
	EnableDebugLogging   bool
}

// Matcher decides whether a selected ingredient matches a recipe's text.
// All comparisons run on normalized tokens, so matching is insensitive to
// case, accents and cedillas.
type Matcher struct {
	minContainmentLength int
	minSimilarityLength  int
	similarityThreshold  float64
	quorumRatio          float64
	enableDebugLogging   bool
}

// NewMatcher creates a matcher with the given configuration, falling back to
// defaults for unset values.
func NewMatcher(config MatcherConfig) *Matcher {
	minContainment := config.MinContainmentLength
	if minContainment <= 0 {
		minContainment = defaultMinContainmentLength
	}

	minSimilarity := config.MinSimilarityLength
	if minSimilarity <= 0 {
		minSimilarity = defaultMinSimilarityLength
	}

	simThreshold := config.SimilarityThreshold
	if simThreshold <= 0 {
		simThreshold = defaultSimilarityThreshold
	}

	quorumRatio := config.QuorumRatio
	if quorumRatio <= 0 || quorumRatio > 1 {
		quorumRatio = defaultQuorumRatio
	}

	return &Matcher{
		minContainmentLength: minContainment,
		minSimilarityLength:  minSimilarity,
		similarityThreshold:  simThreshold,
		quorumRatio:          quorumRatio,
		enableDebugLogging:   config.EnableDebugLogging,
	}
}

// tokenMatches compares two normalized tokens. Rules apply in order, first
// match wins:
//  1. exact equality;
//  2. substring containment in either direction, when the selected token is
//     long enough (covers singular/plural and compound words, e.g. "salmao"
//     inside "salmao sashimi" tokens);
//  3. length-ratio similarity min/max >= threshold for longer tokens, gated
//     on the same containment check. Rule 2 already accepts those pairs, the
//     rule is kept for parity with the shipped matching behavior.
func (m *Matcher) tokenMatches(selected, candidate string) bool {
	if selected == candidate {
		return true
	}

	contains := strings.Contains(candidate, selected) || strings.Contains(selected, candidate)

	if len(selected) >= m.minContainmentLength && contains {
		return true
	}

	if len(selected) >= m.minSimilarityLength && len(candidate) >= m.minSimilarityLength {
		shorter, longer := len(selected), len(candidate)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		similarity := float64(shorter) / float64(longer)
		if similarity >= m.similarityThreshold && contains {
			return true
		}
	}

	return false
}

// IngredientMatches reports whether any word of the selected item matches any
// word of the candidate text. Both sides are normalized here, so callers can
// pass raw user input and raw catalog text.
func (m *Matcher) IngredientMatches(selectedItem, candidateText string) bool {
	selectedWords := textnorm.Words(selectedItem)
	candidateWords := textnorm.Words(candidateText)

	return m.anyWordMatches(selectedWords, candidateWords)
}

// anyWordMatches runs tokenMatches across two pre-normalized word lists.
func (m *Matcher) anyWordMatches(selectedWords, candidateWords []string) bool {
	for _, sel := range selectedWords {
		for _, cand := range candidateWords {
			if m.tokenMatches(sel, cand) {
				return true
			}
		}
	}
	return false
}
