package service

import (
	"strings"
	"testing"
)

func TestFindEvidence_TopicalKeywordMatch(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Raman discovered the inelastic scattering of light in his Calcutta laboratory. Raman founded a journal of physics."

	got := ev.FindEvidence(summary, "", []string{"discovered"}, "raman")

	want := "Raman discovered the inelastic scattering of light in his Calcutta laboratory."
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFindEvidence_NeverRepeatsWithinSession(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Raman discovered the inelastic scattering of light in his Calcutta laboratory. Raman founded the Indian Journal of Physics in 1926."

	first := ev.FindEvidence(summary, "", []string{"discovered", "founded"}, "raman")
	second := ev.FindEvidence(summary, "", []string{"discovered", "founded"}, "raman")

	if first == "" || second == "" {
		t.Fatalf("expected two sentences, got %q and %q", first, second)
	}
	if first == second {
		t.Fatalf("evidence repeated within a session: %q", first)
	}

	third := ev.FindEvidence(summary, "", []string{"discovered", "founded"}, "raman")
	if third != "" {
		t.Fatalf("exhausted biography should yield empty, got %q", third)
	}
}

func TestFindEvidence_SeparateScientistsDoNotShareUsage(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Raman discovered the inelastic scattering of light in his Calcutta laboratory."

	first := ev.FindEvidence(summary, "", []string{"discovered"}, "raman")
	other := ev.FindEvidence(summary, "", []string{"discovered"}, "bose")

	if first == "" || other == "" {
		t.Fatalf("expected both scientists to get evidence, got %q and %q", first, other)
	}
}

func TestFindEvidence_RelaxedSecondPass(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Khorana completed a total synthesis of a gene through years of research."

	got := ev.FindEvidence(summary, "", []string{"volcano"}, "khorana")
	if got == "" {
		t.Fatalf("expected work-indicator fallback to fire")
	}
	if !strings.Contains(got, "research") {
		t.Fatalf("unexpected sentence %q", got)
	}
}

func TestFindEvidence_PureBiographyRejected(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Raman was born in Tiruchirappalli to a family of teachers. Raman married Lokasundari Ammal and moved to Calcutta."

	if got := ev.FindEvidence(summary, "", []string{"born", "married"}, "raman"); got != "" {
		t.Fatalf("pure biography should yield empty evidence, got %q", got)
	}
}

func TestFindEvidence_WikipediaIntroRejected(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "Chandrasekhara Venkata Raman (7 November 1888 - 21 November 1970) was an Indian physicist known for light scattering research."

	if got := ev.FindEvidence(summary, "", []string{"research"}, "raman"); got != "" {
		t.Fatalf("wikipedia intro should be rejected, got %q", got)
	}
}

func TestFindEvidence_WhoClauseRecovery(t *testing.T) {
	ev := NewEvidenceSession()
	summary := "A meticulous scientist who pioneered the use of diffraction methods in structural studies across decades."

	got := ev.FindEvidence(summary, "", []string{"pioneered"}, "gn")

	if !strings.HasPrefix(got, "Pioneered the use of diffraction methods") {
		t.Fatalf("expected recovered clause, got %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Fatalf("recovered clause should end with a period, got %q", got)
	}
}

func TestFindEvidence_EmptyInput(t *testing.T) {
	ev := NewEvidenceSession()
	if got := ev.FindEvidence("", "", []string{"research"}, "nobody"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"Raman discovered the scattering of light in liquids", true},
		{"also received the Hughes Medal from the Royal Society", false},
		{"Awarded the Bharat Ratna for contributions to physics", false},
		{"too short", false},
		{"lowercase start but otherwise a reasonable sentence", false},
	}
	for _, tt := range tests {
		if got := isWellFormed(tt.sentence); got != tt.want {
			t.Fatalf("isWellFormed(%q) = %t want %t", tt.sentence, got, tt.want)
		}
	}
}

func TestIsTruncated(t *testing.T) {
	if !isTruncated("He completed his Ph.") {
		t.Fatalf("expected truncated abbreviation to be detected")
	}
	if isTruncated("He completed his doctorate in 1921.") {
		t.Fatalf("complete sentence flagged as truncated")
	}
}

func TestSplitSentences_DropsShortPieces(t *testing.T) {
	got := splitSentences("Dr. Raman worked on the physics of stringed instruments. No.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence got %d: %v", len(got), got)
	}
}
