package domain

// MatchMode selects how the filter decides whether a recipe qualifies for a
// given ingredient selection.
type MatchMode bool

const (
	// ModeFlexible qualifies a recipe when enough selected ingredients match
	// anywhere in its searchable text (quorum-based partial matching).
	ModeFlexible MatchMode = false

	// ModeExact requires the selection and the recipe's ingredient list to
	// cover each other completely, including matching counts.
	ModeExact MatchMode = true
)

// ParseMatchMode interprets a mode string from the API. Anything other than
// "exact" falls back to flexible, which is the UI default.
func ParseMatchMode(s string) MatchMode {
	if s == "exact" {
		return ModeExact
	}
	return ModeFlexible
}

func (m MatchMode) String() string {
	if m == ModeExact {
		return "exact"
	}
	return "flexible"
}
