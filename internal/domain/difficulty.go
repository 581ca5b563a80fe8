package domain

import "strings"

// DifficultyTier is the enumerated difficulty of a recipe, used by the UI for
// badge styling. Catalog values outside the known set map to TierUnknown.
type DifficultyTier int

const (
	TierUnknown DifficultyTier = iota
	TierEasy
	TierMedium
	TierHard
)

// ParseDifficulty maps a catalog difficulty string to its tier. The catalog
// writes Portuguese labels, sometimes without accents, so both spellings are
// accepted.
func ParseDifficulty(s string) DifficultyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fácil", "facil", "easy":
		return TierEasy
	case "médio", "medio", "média", "media", "medium":
		return TierMedium
	case "difícil", "dificil", "hard":
		return TierHard
	default:
		return TierUnknown
	}
}

// String returns the canonical label for the tier.
func (t DifficultyTier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}
