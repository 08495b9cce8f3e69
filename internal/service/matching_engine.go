package service

import (
	"context"
	"sort"
	"strings"

	"scientist-twin/internal/domain"
)

const (
	defaultTopN = 3

	// A domain filter that leaves fewer candidates than this is treated as
	// too thin to rank meaningfully and the full pool is used instead.
	minFilteredPool = 10
)

// Ranker scores a candidate pool against a profile and keeps the top N.
// The sort is stable so equal scores preserve database order; the same
// profile against the same pool always returns the same ranking.
type Ranker struct {
	scorer ScoreEngine
}

func (r Ranker) Rank(profile domain.Profile, pool []domain.Scientist, topN int) []domain.MatchCandidate {
	if topN <= 0 {
		topN = defaultTopN
	}

	scored := make([]domain.MatchCandidate, 0, len(pool))
	for _, sci := range pool {
		score, matching, differing := r.scorer.Score(profile, sci.Traits)
		scored = append(scored, domain.MatchCandidate{
			Scientist:       sci,
			Score:           score,
			MatchingTraits:  matching,
			DifferingTraits: differing,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// MatchingEngine owns the scientist pool and orchestrates filtering,
// ranking, and narrative generation. The pool is read-only after
// construction, so the engine is safe for concurrent requests.
type MatchingEngine struct {
	scientists []domain.Scientist
	ranker     Ranker
	narrator   *NarrativeBuilder
}

func NewMatchingEngine(scientists []domain.Scientist, narrator *NarrativeBuilder) *MatchingEngine {
	return &MatchingEngine{
		scientists: scientists,
		narrator:   narrator,
	}
}

// PoolSize reports how many scientists are loaded.
func (m *MatchingEngine) PoolSize() int {
	return len(m.scientists)
}

// FindMatches returns the top candidates for a profile. domainKey narrows
// the pool to related fields; recentlyShown names are excluded so repeat
// plays surface fresh scientists. Both filters are soft: if either would
// leave too few candidates it is dropped, recently-shown first.
func (m *MatchingEngine) FindMatches(profile domain.Profile, domainKey string, recentlyShown []string, topN int) []domain.MatchCandidate {
	pool := m.filterByDomain(domainKey)
	pool = excludeRecentlyShown(pool, recentlyShown)
	return m.ranker.Rank(profile, pool, topN)
}

func (m *MatchingEngine) filterByDomain(domainKey string) []domain.Scientist {
	allowed, ok := domainFields[domainKey]
	if !ok {
		return m.scientists
	}

	var filtered []domain.Scientist
	for _, sci := range m.scientists {
		for _, field := range allowed {
			if sci.Field == field {
				filtered = append(filtered, sci)
				break
			}
		}
	}
	if len(filtered) < minFilteredPool {
		return m.scientists
	}
	return filtered
}

func excludeRecentlyShown(pool []domain.Scientist, recentlyShown []string) []domain.Scientist {
	if len(recentlyShown) == 0 {
		return pool
	}

	shown := make(map[string]bool, len(recentlyShown))
	for _, name := range recentlyShown {
		shown[name] = true
	}

	var fresh []domain.Scientist
	for _, sci := range pool {
		if !shown[sci.Name] {
			fresh = append(fresh, sci)
		}
	}
	if len(fresh) == 0 {
		return pool
	}
	return fresh
}

// FullMatches ranks and then attaches a narrative and Wikipedia link to
// each candidate. Evidence no-repeat tracking is scoped to this call so
// concurrent requests never share extraction state.
func (m *MatchingEngine) FullMatches(ctx context.Context, profile domain.Profile, domainKey string, recentlyShown []string, topN int) []domain.MatchResult {
	candidates := m.FindMatches(profile, domainKey, recentlyShown, topN)
	ev := NewEvidenceSession()

	results := make([]domain.MatchResult, 0, len(candidates))
	for _, cand := range candidates {
		narrative, _ := m.narrator.Build(ctx, profile, cand, ev)
		sci := cand.Scientist

		results = append(results, domain.MatchResult{
			Name:            sci.Name,
			Field:           sci.Field,
			Subfield:        sci.Subfield,
			Archetype:       sci.Archetype,
			Era:             sci.Era,
			Achievements:    sci.Achievements,
			Summary:         sci.Summary,
			Moments:         sci.Moments,
			WikiURL:         wikipediaURL(sci),
			Score:           cand.Score,
			MatchQuality:    narrative.MatchQuality,
			Resonances:      narrative.Resonances,
			Contrasts:       narrative.Contrasts,
			WorkingStyle:    narrative.WorkingStyle,
			CharacterMoment: narrative.CharacterMoment,
		})
	}
	return results
}

func wikipediaURL(sci domain.Scientist) string {
	title := sci.WikiTitle
	if title == "" {
		title = sci.Name
	}
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(title, " ", "_")
}
