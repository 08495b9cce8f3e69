package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scientist-twin/internal/domain"
	"scientist-twin/internal/llm"
)

func testCandidate() domain.MatchCandidate {
	profile := fullProfile()
	sci := domain.Scientist{
		Name:         "C. V. Raman",
		Field:        "Physics",
		Subfield:     "Optics",
		Archetype:    "Experimental Pioneer",
		Achievements: "Raman received the Nobel Prize in Physics for work on the scattering of light.",
		Summary:      "Raman discovered the inelastic scattering of light in his Calcutta laboratory. Raman founded the Indian Journal of Physics in 1926. Raman built his spectrograph from inexpensive components.",
		Moments: []string{
			"Announced the discovery of the Raman effect on 28 February 1928, now celebrated as National Science Day.",
		},
		Traits: traitsFromProfile(profile),
	}

	var engine ScoreEngine
	score, matching, differing := engine.Score(profile, sci.Traits)
	return domain.MatchCandidate{
		Scientist:       sci,
		Score:           score,
		MatchingTraits:  matching,
		DifferingTraits: differing,
	}
}

const validNarrativeJSON = `{
	"match_quality": "Deep Resonance",
	"resonances": [{"trait": "Approach", "explanation": "Both reason from first principles."}],
	"contrasts": [],
	"working_style": "Worked hands-on at the bench.",
	"character_moment": "Announced the Raman effect in 1928."
}`

func TestBuild_UsesLLMWhenResponseValid(t *testing.T) {
	mock := &llm.MockClient{Response: validNarrativeJSON}
	builder := NewNarrativeBuilder(mock, 0)

	narrative, fromLLM := builder.Build(context.Background(), fullProfile(), testCandidate(), NewEvidenceSession())

	if !fromLLM {
		t.Fatalf("expected llm narrative")
	}
	if narrative.MatchQuality != domain.QualityDeepResonance {
		t.Fatalf("unexpected quality %q", narrative.MatchQuality)
	}
	if len(mock.Prompts) != 1 {
		t.Fatalf("expected 1 prompt got %d", len(mock.Prompts))
	}
	if !strings.Contains(mock.Prompts[0], "C. V. Raman") {
		t.Fatalf("prompt missing scientist name")
	}
}

func TestBuild_AcceptsFencedResponse(t *testing.T) {
	mock := &llm.MockClient{Response: "```json\n" + validNarrativeJSON + "\n```"}
	builder := NewNarrativeBuilder(mock, 0)

	narrative, fromLLM := builder.Build(context.Background(), fullProfile(), testCandidate(), NewEvidenceSession())

	if !fromLLM {
		t.Fatalf("expected fenced response to parse")
	}
	if narrative.WorkingStyle != "Worked hands-on at the bench." {
		t.Fatalf("unexpected working style %q", narrative.WorkingStyle)
	}
}

func TestBuild_FallsBackOnLLMError(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("boom")}
	builder := NewNarrativeBuilder(mock, 0)
	cand := testCandidate()

	narrative, fromLLM := builder.Build(context.Background(), fullProfile(), cand, NewEvidenceSession())

	if fromLLM {
		t.Fatalf("expected template fallback")
	}
	if narrative.MatchQuality != domain.QualityDeepResonance {
		t.Fatalf("perfect score should label %q, got %q", domain.QualityDeepResonance, narrative.MatchQuality)
	}
	if len(narrative.Resonances) != 3 {
		t.Fatalf("expected 3 fallback resonances got %d", len(narrative.Resonances))
	}
	for _, r := range narrative.Resonances {
		if r.Trait == "" || r.Explanation == "" {
			t.Fatalf("fallback resonance has empty field: %+v", r)
		}
	}
	if narrative.WorkingStyle == "" || narrative.CharacterMoment == "" {
		t.Fatalf("fallback must fill working style and moment")
	}
}

func TestBuild_FallsBackOnGarbageResponse(t *testing.T) {
	tests := []string{
		"not json at all",
		`{"match_quality": "Deep Resonance"}`,
		`{"resonances": [{"trait": "", "explanation": ""}], "working_style": "x", "character_moment": "y"}`,
		"",
	}
	for _, resp := range tests {
		mock := &llm.MockClient{Response: resp}
		builder := NewNarrativeBuilder(mock, 0)
		if _, fromLLM := builder.Build(context.Background(), fullProfile(), testCandidate(), NewEvidenceSession()); fromLLM {
			t.Fatalf("response %q should have fallen back", resp)
		}
	}
}

func TestBuild_NilClientGoesStraightToTemplates(t *testing.T) {
	builder := NewNarrativeBuilder(nil, 0)

	narrative, fromLLM := builder.Build(context.Background(), fullProfile(), testCandidate(), NewEvidenceSession())

	if fromLLM {
		t.Fatalf("nil client cannot produce an llm narrative")
	}
	if len(narrative.Resonances) == 0 {
		t.Fatalf("expected template resonances")
	}
}

func TestBuild_NormalizesUnknownQualityLabel(t *testing.T) {
	resp := strings.Replace(validNarrativeJSON, "Deep Resonance", "Soul Mate", 1)
	mock := &llm.MockClient{Response: resp}
	builder := NewNarrativeBuilder(mock, 0)
	cand := testCandidate()

	narrative, fromLLM := builder.Build(context.Background(), fullProfile(), cand, NewEvidenceSession())

	if !fromLLM {
		t.Fatalf("expected llm narrative")
	}
	if narrative.MatchQuality != domain.QualityDeepResonance {
		t.Fatalf("unknown label should be replaced by score-derived %q, got %q",
			domain.QualityDeepResonance, narrative.MatchQuality)
	}
}

func TestQualityForScore_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, domain.QualityDeepResonance},
		{0.71, domain.QualityDeepResonance},
		{0.7, domain.QualityKindredSpirit},
		{0.51, domain.QualityKindredSpirit},
		{0.5, domain.QualityParallelPaths},
		{0.0, domain.QualityParallelPaths},
	}
	for _, tt := range tests {
		if got := qualityForScore(tt.score); got != tt.want {
			t.Fatalf("qualityForScore(%f) = %q want %q", tt.score, got, tt.want)
		}
	}
}

func TestFallback_ContrastUsesSecondPerson(t *testing.T) {
	got := buildContrast(domain.TraitDiff{
		Dimension:      domain.DimCollaboration,
		UserValue:      domain.CollabSolo,
		ScientistValue: domain.CollabLargeTeam,
	}, "Homi J. Bhabha")

	if got.Trait != "Collaboration" {
		t.Fatalf("unexpected trait title %q", got.Trait)
	}
	if !strings.HasPrefix(got.Explanation, "You ") {
		t.Fatalf("contrast should address the user, got %q", got.Explanation)
	}
	if strings.Contains(got.Explanation, "You thrives") || strings.Contains(got.Explanation, "You excels") {
		t.Fatalf("third-person verb leaked into second person: %q", got.Explanation)
	}
	if !strings.Contains(got.Explanation, "Homi J. Bhabha") {
		t.Fatalf("contrast should name the scientist, got %q", got.Explanation)
	}
	if !strings.HasSuffix(got.Explanation, "This difference can expand your perspective.") {
		t.Fatalf("missing closing sentence: %q", got.Explanation)
	}
}

func TestFallback_WorkingStyleRejectsPlaceholder(t *testing.T) {
	sci := domain.Scientist{
		Name:         "Test Subject",
		Field:        "Physics",
		Archetype:    "Theoretical Visionary",
		WorkingStyle: "Made significant contributions to science and helped advance the field considerably.",
	}
	got := workingStyleText(sci)
	if strings.Contains(strings.ToLower(got), "significant contributions") {
		t.Fatalf("placeholder working style leaked through: %q", got)
	}
	if !strings.Contains(got, "Physics") {
		t.Fatalf("archetype style should mention the field, got %q", got)
	}
}

func TestFallback_WorkingStyleKeepsRealText(t *testing.T) {
	sci := domain.Scientist{
		Name:         "Test Subject",
		Field:        "Physics",
		WorkingStyle: "Worked hands-on at the bench with instruments of his own design, preferring small budgets.",
	}
	if got := workingStyleText(sci); got != sci.WorkingStyle {
		t.Fatalf("real working style replaced: %q", got)
	}
}

func TestSelectMoment_PrefersSignificantCompleteMoment(t *testing.T) {
	sci := domain.Scientist{
		Name:      "Test Subject",
		Field:     "Physics",
		Archetype: "Experimental Pioneer",
		Moments: []string{
			"Test Subject is an Indian physicist who headed a large laboratory in Bangalore.",
			"He finished his studies under Prof.",
			"Received widespread attention for early spectroscopy results in Calcutta",
			"Awarded the Nobel Prize in Physics in 1930 for the discovery of light scattering.",
		},
	}

	got := selectMoment(sci)
	if got != "Awarded the Nobel Prize in Physics in 1930 for the discovery of light scattering." {
		t.Fatalf("unexpected moment %q", got)
	}
}

func TestSelectMoment_ArchetypeFallback(t *testing.T) {
	sci := domain.Scientist{
		Name:      "Test Subject",
		Field:     "Chemistry",
		Archetype: "Institution Builder",
	}
	got := selectMoment(sci)
	if !strings.Contains(got, "Chemistry") {
		t.Fatalf("archetype moment should mention the field, got %q", got)
	}
}

func TestSelectMoment_GenericLastResort(t *testing.T) {
	sci := domain.Scientist{Name: "Test Subject", Field: "Geology"}
	if got := selectMoment(sci); got != "Made lasting contributions to Geology." {
		t.Fatalf("unexpected last-resort moment %q", got)
	}
}
