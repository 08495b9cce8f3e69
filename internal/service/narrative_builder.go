package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scientist-twin/internal/domain"
	"scientist-twin/internal/llm"
)

const (
	deepResonanceThreshold = 0.7
	kindredSpiritThreshold = 0.5

	maxPromptResonances = 4
	fallbackResonances  = 3
	fallbackContrasts   = 1

	defaultLLMTimeout = 20 * time.Second
)

// NarrativeBuilder turns a scored candidate into prose. The LLM path is
// best-effort: any error, timeout, or malformed response falls back to the
// deterministic templates, so Build never fails.
type NarrativeBuilder struct {
	llm     llm.Client
	timeout time.Duration
}

func NewNarrativeBuilder(client llm.Client, timeout time.Duration) *NarrativeBuilder {
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &NarrativeBuilder{llm: client, timeout: timeout}
}

// Build generates the narrative for one candidate. The returned bool reports
// whether the LLM produced it; false means the template fallback ran.
func (b *NarrativeBuilder) Build(ctx context.Context, profile domain.Profile, cand domain.MatchCandidate, ev *EvidenceSession) (domain.Narrative, bool) {
	if b.llm != nil {
		genCtx, cancel := context.WithTimeout(ctx, b.timeout)
		raw, err := b.llm.Generate(genCtx, buildMatchPrompt(cand))
		cancel()
		if err == nil {
			if n, ok := parseNarrative(raw); ok {
				if !validQuality(n.MatchQuality) {
					n.MatchQuality = qualityForScore(cand.Score)
				}
				return n, true
			}
		}
	}
	return b.fallback(profile, cand, ev), false
}

func qualityForScore(score float64) string {
	switch {
	case score > deepResonanceThreshold:
		return domain.QualityDeepResonance
	case score > kindredSpiritThreshold:
		return domain.QualityKindredSpirit
	default:
		return domain.QualityParallelPaths
	}
}

func validQuality(q string) bool {
	switch q {
	case domain.QualityDeepResonance, domain.QualityKindredSpirit, domain.QualityParallelPaths:
		return true
	}
	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func buildMatchPrompt(cand domain.MatchCandidate) string {
	sci := cand.Scientist
	name := sci.Name

	var traitLines []string
	for i, t := range cand.MatchingTraits {
		if i >= maxPromptResonances {
			break
		}
		if t.MatchType == domain.MatchExact {
			traitLines = append(traitLines, fmt.Sprintf("- %s: Both you and %s %s",
				t.Dimension, name, describeTrait(t.Dimension, t.UserValue)))
			continue
		}
		traitLines = append(traitLines, fmt.Sprintf("- %s: You %s, while %s %s - related approaches",
			t.Dimension, describeTrait(t.Dimension, t.UserValue), name, describeTrait(t.Dimension, t.ScientistValue)))
	}

	differing := cand.DifferingTraits
	if len(differing) > fallbackContrasts {
		differing = differing[:fallbackContrasts]
	}
	differingJSON, _ := json.Marshal(differing)

	moments := sci.Moments
	if len(moments) > 3 {
		moments = moments[:3]
	}
	momentsJSON, _ := json.Marshal(moments)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Match a quiz-taker with %s, an Indian scientist.\n\n", name)
	sb.WriteString("BIO DATA:\n")
	fmt.Fprintf(&sb, "Name: %s | Field: %s - %s | Archetype: %q\n", name, sci.Field, sci.Subfield, sci.Archetype)
	fmt.Fprintf(&sb, "Achievements: %s\n", truncate(sci.Achievements, 500))
	fmt.Fprintf(&sb, "Summary: %s\n", truncate(sci.Summary, 400))
	fmt.Fprintf(&sb, "Moments: %s\n", momentsJSON)
	fmt.Fprintf(&sb, "Working Style: %s\n\n", truncate(sci.WorkingStyle, 200))
	fmt.Fprintf(&sb, "SHARED TRAITS: %s\n", strings.Join(traitLines, "\n"))
	fmt.Fprintf(&sb, "DIFFERENCES: %s\n\n", differingJSON)
	sb.WriteString("Return JSON with SHORT, PUNCHY content. Each explanation should be 1-2 sentences MAX. Be specific - use real facts, awards, discoveries.\n\n")
	sb.WriteString("{\n")
	sb.WriteString("    \"match_quality\": \"Deep Resonance\" or \"Kindred Spirit\" or \"Parallel Paths\",\n")
	sb.WriteString("    \"resonances\": [\n")
	fmt.Fprintf(&sb, "        {\"trait\": \"TraitName\", \"explanation\": \"1-2 sentences. Connect user's trait to ONE specific fact about %s.\"},\n", name)
	sb.WriteString("        {\"trait\": \"TraitName\", \"explanation\": \"1-2 sentences with specific connection.\"}\n")
	sb.WriteString("    ],\n")
	sb.WriteString("    \"contrasts\": [\n")
	sb.WriteString("        {\"trait\": \"TraitName\", \"explanation\": \"1 sentence on productive difference.\"}\n")
	sb.WriteString("    ],\n")
	fmt.Fprintf(&sb, "    \"working_style\": \"2 sentences on %s's work habits. Be specific.\",\n", name)
	sb.WriteString("    \"character_moment\": \"1-2 sentences. ONE specific event from their life.\"\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Return ONLY valid JSON. Keep it concise.")
	return sb.String()
}

// parseNarrative decodes the model output defensively: fences stripped, the
// first balanced JSON object extracted, required fields checked. A narrative
// with missing pieces is rejected wholesale rather than patched.
func parseNarrative(raw string) (domain.Narrative, bool) {
	cleaned := cleanModelResponse(raw)

	candidate := extractFirstJSONObject(cleaned)
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return domain.Narrative{}, false
	}

	var n domain.Narrative
	if err := json.Unmarshal([]byte(candidate), &n); err != nil {
		return domain.Narrative{}, false
	}

	if len(n.Resonances) == 0 {
		return domain.Narrative{}, false
	}
	for _, r := range n.Resonances {
		if strings.TrimSpace(r.Trait) == "" || strings.TrimSpace(r.Explanation) == "" {
			return domain.Narrative{}, false
		}
	}
	if strings.TrimSpace(n.WorkingStyle) == "" || strings.TrimSpace(n.CharacterMoment) == "" {
		return domain.Narrative{}, false
	}
	return n, true
}

func (b *NarrativeBuilder) fallback(profile domain.Profile, cand domain.MatchCandidate, ev *EvidenceSession) domain.Narrative {
	sci := cand.Scientist

	var resonances []domain.TraitExplanation
	for i, t := range cand.MatchingTraits {
		if i >= fallbackResonances {
			break
		}
		resonances = append(resonances, buildResonance(t, sci, ev))
	}

	var contrasts []domain.TraitExplanation
	for i, d := range cand.DifferingTraits {
		if i >= fallbackContrasts {
			break
		}
		contrasts = append(contrasts, buildContrast(d, sci.Name))
	}

	return domain.Narrative{
		MatchQuality:    qualityForScore(cand.Score),
		Resonances:      resonances,
		Contrasts:       contrasts,
		WorkingStyle:    workingStyleText(sci),
		CharacterMoment: selectMoment(sci),
	}
}

// buildResonance renders the template for one shared trait and appends a
// biographical sentence when the extractor finds one. Related matches use
// the scientist's value so the sentence describes what they actually did.
func buildResonance(t domain.TraitMatch, sci domain.Scientist, ev *EvidenceSession) domain.TraitExplanation {
	value := t.UserValue
	if t.MatchType == domain.MatchRelated {
		value = t.ScientistValue
	}

	tpl, ok := resonanceTemplates[t.Dimension][value]
	if !ok {
		desc := describeTrait(t.Dimension, value)
		explanation := fmt.Sprintf("You share %s's approach: %s.", sci.Name, desc)
		if fact := ev.FindEvidence(sci.Summary, sci.Achievements, nil, sci.Name); fact != "" {
			explanation += " " + fact
		}
		return domain.TraitExplanation{Trait: traitTitle(t.Dimension), Explanation: explanation}
	}

	explanation := renderTemplate(tpl.lead, sci.Name, sci.Field)
	if evidence := ev.FindEvidence(sci.Summary, sci.Achievements, tpl.keywords, sci.Name); evidence != "" {
		explanation += " " + evidence
	}
	return domain.TraitExplanation{Trait: traitTitle(t.Dimension), Explanation: explanation}
}

func buildContrast(d domain.TraitDiff, name string) domain.TraitExplanation {
	userDesc := describeTrait(d.Dimension, d.UserValue)
	if userDesc == "" {
		userDesc = "take one approach"
	}
	sciDesc := describeTrait(d.Dimension, d.ScientistValue)
	if sciDesc == "" {
		sciDesc = "took another path"
	}

	return domain.TraitExplanation{
		Trait: traitTitle(d.Dimension),
		Explanation: fmt.Sprintf("You %s, while %s %s. This difference can expand your perspective.",
			secondPerson.Replace(userDesc), name, sciDesc),
	}
}

// workingStyleText prefers the stored working style but refuses the generic
// placeholder text some records carry; those get an archetype-based line.
func workingStyleText(sci domain.Scientist) string {
	ws := sci.WorkingStyle
	if len(ws) > 50 && !strings.Contains(strings.ToLower(ws), "significant contributions") {
		return ws
	}
	if style, ok := archetypeStyles[sci.Archetype]; ok {
		return renderTemplate(style, sci.Name, sci.Field)
	}
	return fmt.Sprintf("A dedicated researcher who advanced the field of %s.", sci.Field)
}

// selectMoment picks the defining character moment: a significant complete
// moment first, then any complete non-intro moment, then a candidate from
// the summary body, then an archetype default.
func selectMoment(sci domain.Scientist) string {
	for _, m := range sci.Moments {
		if !isCompleteMoment(m) || isIntroMoment(m) {
			continue
		}
		if containsAnyKeyword(strings.ToLower(m), momentKeywords) {
			return m
		}
	}
	for _, m := range sci.Moments {
		if isCompleteMoment(m) && !isIntroMoment(m) {
			return m
		}
	}

	// The summary's first sentence is almost always the Wikipedia intro, so
	// scan the next three.
	sentences := strings.Split(sci.Summary, ".")
	summaryKeywords := []string{"first", "founded", "led", "became", "award", "pioneered", "discovered", "developed"}
	for i := 1; i < len(sentences) && i < 4; i++ {
		s := strings.TrimSpace(sentences[i])
		if len(s) <= 40 || len(s) >= 200 || isIntroMoment(s) {
			continue
		}
		if containsAnyKeyword(strings.ToLower(s), summaryKeywords) {
			return s + "."
		}
	}

	if moment, ok := archetypeMoments[sci.Archetype]; ok {
		return renderTemplate(moment, sci.Name, sci.Field)
	}
	return fmt.Sprintf("Made lasting contributions to %s.", sci.Field)
}

func isCompleteMoment(s string) bool {
	return len(s) >= 30 && !isTruncated(s)
}

func isIntroMoment(s string) bool {
	return containsAnyKeyword(strings.ToLower(s), momentIntroPatterns)
}
