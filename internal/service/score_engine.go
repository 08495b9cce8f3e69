package service

import "scientist-twin/internal/domain"

const (
	exactWeight   = 1.0
	relatedWeight = 0.5
)

// ScoreEngine quantifies how closely a scientist's trait vector tracks a
// quiz profile. It is pure: no state, no side effects, never errors.
type ScoreEngine struct{}

// Score walks the 12 dimensions and classifies each as exact, related,
// differing, or skipped (scientist has no value). The score divides by the
// fixed dimension count, not by the number of comparable dimensions, so
// sparse legacy records cannot score as high as complete ones.
func (ScoreEngine) Score(profile domain.Profile, traits domain.Traits) (float64, []domain.TraitMatch, []domain.TraitDiff) {
	var (
		matching  []domain.TraitMatch
		differing []domain.TraitDiff
		total     float64
	)

	for _, dim := range domain.Dimensions {
		userValue := profile.Get(dim)
		scientistValue := traits.Get(dim)

		switch {
		case scientistValue == "":
			// Missing data neither matches nor differs.
		case scientistValue == userValue:
			total += exactWeight
			matching = append(matching, domain.TraitMatch{
				Dimension:      dim,
				MatchType:      domain.MatchExact,
				UserValue:      userValue,
				ScientistValue: scientistValue,
			})
		case areRelated(dim, userValue, scientistValue):
			total += relatedWeight
			matching = append(matching, domain.TraitMatch{
				Dimension:      dim,
				MatchType:      domain.MatchRelated,
				UserValue:      userValue,
				ScientistValue: scientistValue,
			})
		default:
			differing = append(differing, domain.TraitDiff{
				Dimension:      dim,
				UserValue:      userValue,
				ScientistValue: scientistValue,
			})
		}
	}

	score := total / float64(len(domain.Dimensions))
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, matching, differing
}
