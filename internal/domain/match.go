package domain

// MatchType distinguishes identical values from related-pair values.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchRelated MatchType = "related"
)

// TraitMatch is one dimension where user and scientist align.
type TraitMatch struct {
	Dimension      Dimension `json:"dimension"`
	MatchType      MatchType `json:"match_type"`
	UserValue      Value     `json:"user_value"`
	ScientistValue Value     `json:"scientist_value"`
}

// TraitDiff is one dimension where both sides have a value but they neither
// match nor relate. Dimensions the scientist lacks appear in neither list.
type TraitDiff struct {
	Dimension      Dimension `json:"dimension"`
	UserValue      Value     `json:"user_value"`
	ScientistValue Value     `json:"scientist_value"`
}

// MatchCandidate is a scored scientist, recomputed fresh per request.
type MatchCandidate struct {
	Scientist       Scientist    `json:"scientist"`
	Score           float64      `json:"score"`
	MatchingTraits  []TraitMatch `json:"matching_traits"`
	DifferingTraits []TraitDiff  `json:"differing_traits"`
}

// Quality labels derived from the numeric score.
const (
	QualityDeepResonance = "Deep Resonance"
	QualityKindredSpirit = "Kindred Spirit"
	QualityParallelPaths = "Parallel Paths"
)

// TraitExplanation pairs a trait title with its narrative sentence(s).
type TraitExplanation struct {
	Trait       string `json:"trait"`
	Explanation string `json:"explanation"`
}

// Narrative holds the human-readable part of a match, whether LLM-generated
// or built from the deterministic templates.
type Narrative struct {
	MatchQuality    string             `json:"match_quality"`
	Resonances      []TraitExplanation `json:"resonances"`
	Contrasts       []TraitExplanation `json:"contrasts"`
	WorkingStyle    string             `json:"working_style"`
	CharacterMoment string             `json:"character_moment"`
}

// MatchResult is the full per-scientist payload returned to the caller.
type MatchResult struct {
	Name            string             `json:"name"`
	Field           string             `json:"field"`
	Subfield        string             `json:"subfield,omitempty"`
	Archetype       string             `json:"archetype,omitempty"`
	Era             string             `json:"era,omitempty"`
	Achievements    string             `json:"achievements,omitempty"`
	Summary         string             `json:"summary,omitempty"`
	Moments         []string           `json:"moments,omitempty"`
	WikiURL         string             `json:"wiki_url"`
	Score           float64            `json:"score"`
	MatchQuality    string             `json:"match_quality"`
	Resonances      []TraitExplanation `json:"resonances"`
	Contrasts       []TraitExplanation `json:"contrasts"`
	WorkingStyle    string             `json:"working_style"`
	CharacterMoment string             `json:"character_moment"`
}
