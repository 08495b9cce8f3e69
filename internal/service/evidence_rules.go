package service

import (
	"strings"
	"unicode"
)

// Sentence filters for the evidence extractor. The biographies are raw
// Wikipedia-derived text, so a large share of sentences are birth/death
// boilerplate or clauses chopped loose by naive splitting. Each rule is a
// named predicate so it can be tested against real biography sentences.

var pureBiographyMarkers = []string{
	"was born", "died on", "married", "children", "spouse", "moved to",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var nationalityLeads = []string{
	"indian physicist", "indian scientist", "indian mathematician",
	"indian engineer", "indian chemist", "indian biologist",
	"indian astronomer", "indian astrophysicist",
}

// fragmentStarters are first words that betray a trailing clause split out
// of a larger sentence rather than a standalone statement.
var fragmentStarters = map[string]bool{
	"first": true, "also": true, "and": true, "but": true, "or": true,
	"which": true, "where": true, "when": true, "that": true, "who": true,
	"awarded": true, "served": true, "known": true, "in": true,
	"career": true, "early": true, "later": true, "after": true,
	"before": true, "during": true, "following": true, "padma": true,
	"born": true, "died": true, "received": true, "joined": true,
	"performed": true, "made": true, "was": true, "is": true, "has": true,
	"had": true, "worked": true, "studied": true, "nobel": true,
	"upon": true, "the": true, "his": true, "her": true, "their": true,
	"a": true, "an": true, "for": true, "with": true, "on": true,
	"at": true, "he": true, "she": true, "they": true, "it": true,
	"this": true, "these": true, "from": true, "since": true, "as": true,
	"being": true,
}

// truncatedEndings mark sentences cut mid-abbreviation by the splitter.
var truncatedEndings = []string{
	" M.", " B.", " Ph.", " Dr.", " Prof.", " Mr.", " Mrs.", " Ms.",
	" Jr.", " Sr.", " St.", " vs.", " etc.", " i.e.", " e.g.",
}

// isPureBiography rejects birth/death/family sentences: they carry no
// evidentiary value for a working-style claim.
func isPureBiography(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, m := range pureBiographyMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// isWikipediaIntro detects lead sentences like
// "C. V. Raman (7 November 1888 – 21 November 1970) was an Indian physicist".
func isWikipediaIntro(sentence string) bool {
	lower := strings.ToLower(sentence)

	if strings.Contains(sentence, "(") && strings.Contains(sentence, ")") {
		for _, month := range monthNames {
			if strings.Contains(sentence, month) {
				return true
			}
		}
	}
	if strings.Contains(lower, ") was a") || strings.Contains(lower, ") is a") {
		return true
	}
	if strings.Contains(lower, "was an indian") || strings.Contains(lower, "is an indian") {
		return true
	}
	if strings.Contains(lower, "was a indian") ||
		strings.Contains(lower, "was an american") ||
		strings.Contains(lower, "was a british") {
		return true
	}

	head := lower
	if len(head) > 100 {
		head = head[:100]
	}
	for _, lead := range nationalityLeads {
		if strings.Contains(head, lead) {
			return true
		}
	}
	return false
}

// isWellFormed accepts only standalone statements: long enough, starting
// with a capital, and not opening on a fragment word.
func isWellFormed(sentence string) bool {
	if len(sentence) < 30 {
		return false
	}
	first := []rune(sentence)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return false
	}
	return !fragmentStarters[strings.ToLower(fields[0])]
}

// isTruncated reports whether the splitter cut the sentence at an
// abbreviation ("completed his Ph." and the like).
func isTruncated(sentence string) bool {
	trimmed := strings.TrimRight(sentence, " ")
	for _, ending := range truncatedEndings {
		if strings.HasSuffix(trimmed, ending) {
			return true
		}
	}
	return false
}

// splitSentences breaks free text on periods and keeps non-trivial pieces.
// The 20-char floor drops initials and stray abbreviations up front.
func splitSentences(text string) []string {
	parts := strings.Split(text, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 20 {
			out = append(out, p)
		}
	}
	return out
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
