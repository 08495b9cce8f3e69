package service

import "strings"

// workIndicators is the relaxed keyword list for the second extraction
// pass, used when nothing matches the topical keywords.
var workIndicators = []string{
	"research", "discovered", "developed", "invented", "pioneered",
	"founded", "contributed", "published", "award", "prize", "known for",
	"breakthrough", "theory", "equation", "method", "technique",
	"professor", "director", "institute", "led", "established",
	"study", "work",
}

const maxEvidenceLen = 300

// EvidenceSession tracks which sentences have already backed a claim for a
// given scientist within one match request, so consecutive explanations do
// not repeat themselves. It is allocated fresh per request and must never
// be shared across requests.
type EvidenceSession struct {
	used map[string]map[string]bool
}

func NewEvidenceSession() *EvidenceSession {
	return &EvidenceSession{used: make(map[string]map[string]bool)}
}

func (e *EvidenceSession) usedFor(scientistKey string) map[string]bool {
	set, ok := e.used[scientistKey]
	if !ok {
		set = make(map[string]bool)
		e.used[scientistKey] = set
	}
	return set
}

// FindEvidence returns one well-formed, previously unused sentence from the
// scientist's biography that plausibly supports a trait claim, or "" when
// none qualifies. Callers must drop the clause entirely on "", never pad it.
func (e *EvidenceSession) FindEvidence(summary, achievements string, keywords []string, scientistKey string) string {
	sentences := splitSentences(summary + " " + achievements)
	used := e.usedFor(scientistKey)

	if s := e.pickSentence(sentences, keywords, used); s != "" {
		return s
	}
	// Relaxed pass: any unused work-related sentence.
	return e.pickSentence(sentences, workIndicators, used)
}

func (e *EvidenceSession) pickSentence(sentences []string, keywords []string, used map[string]bool) string {
	for _, sentence := range sentences {
		if used[sentence] {
			continue
		}
		lower := strings.ToLower(sentence)

		if isPureBiography(sentence) || isWikipediaIntro(sentence) {
			continue
		}
		if !containsAnyKeyword(lower, keywords) {
			continue
		}

		// Recover the substantive clause from "A physicist who discovered X".
		if idx := strings.Index(lower, "who "); idx >= 0 && len(sentence) > 50 {
			clause := strings.TrimSpace(sentence[idx+4:])
			if len(clause) > 20 {
				capitalized := strings.ToUpper(clause[:1]) + clause[1:]
				if isWellFormed(capitalized) {
					used[sentence] = true
					return capitalized + "."
				}
			}
		}

		if len(sentence) < maxEvidenceLen && isWellFormed(sentence) {
			used[sentence] = true
			return sentence + "."
		}
	}
	return ""
}
