package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"scientist-twin/internal/domain"
)

func newTestQuizService() *QuizService {
	return NewQuizService(NewMemoryQuizSessionStore(), time.Hour)
}

func TestQuiz_StartReturnsFirstQuestion(t *testing.T) {
	svc := newTestQuizService()

	session, question, err := svc.Start("cosmos")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.ID == "" {
		t.Fatalf("expected session id")
	}
	if session.Domain != "cosmos" {
		t.Fatalf("expected domain cosmos got %q", session.Domain)
	}
	if question.ID != 1 || question.Dimension != domain.DimApproach {
		t.Fatalf("unexpected first question: %+v", question)
	}
}

func TestQuiz_AnswerProgression(t *testing.T) {
	svc := newTestQuizService()
	session, _, err := svc.Start("")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; i < len(quizQuestions); i++ {
		updated, next, done, err := svc.Answer(session.ID, 0)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if len(updated.Answers) != i+1 {
			t.Fatalf("answer %d: expected %d recorded got %d", i, i+1, len(updated.Answers))
		}
		if i < len(quizQuestions)-1 {
			if done {
				t.Fatalf("answer %d: quiz finished early", i)
			}
			if next == nil || next.ID != i+2 {
				t.Fatalf("answer %d: expected question %d next, got %+v", i, i+2, next)
			}
		} else {
			if !done {
				t.Fatalf("quiz should be done after %d answers", len(quizQuestions))
			}
			if next != nil {
				t.Fatalf("no question expected after the last answer")
			}
		}
	}

	// Answering a finished quiz is a no-op.
	updated, next, done, err := svc.Answer(session.ID, 2)
	if err != nil || !done || next != nil {
		t.Fatalf("answer after done: err=%v done=%t next=%+v", err, done, next)
	}
	if len(updated.Answers) != len(quizQuestions) {
		t.Fatalf("extra answer recorded after done")
	}
}

func TestQuiz_AnswerUnknownSession(t *testing.T) {
	svc := newTestQuizService()
	if _, _, _, err := svc.Answer("missing", 0); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound got %v", err)
	}
}

func TestQuiz_BuildProfile(t *testing.T) {
	svc := newTestQuizService()
	session, _, _ := svc.Start("")

	answers := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}
	for _, a := range answers {
		if _, _, _, err := svc.Answer(session.ID, a); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	stored, err := svc.Session(session.ID)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}

	profile, err := svc.BuildProfile(stored)
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	for i, q := range quizQuestions {
		want := q.Options[answers[i]].MapsTo
		if got := profile.Get(q.Dimension); got != want {
			t.Fatalf("dimension %s: got %q want %q", q.Dimension, got, want)
		}
	}
}

func TestQuiz_BuildProfileClampsOutOfRangeAnswer(t *testing.T) {
	svc := newTestQuizService()
	session, _, _ := svc.Start("")

	for i := 0; i < len(quizQuestions); i++ {
		answer := 0
		if i == 0 {
			answer = 99
		}
		if _, _, _, err := svc.Answer(session.ID, answer); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	stored, _ := svc.Session(session.ID)

	profile, err := svc.BuildProfile(stored)
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	if got := profile.Get(domain.DimApproach); got != quizQuestions[0].Options[0].MapsTo {
		t.Fatalf("out-of-range answer should map to first option, got %q", got)
	}
}

func TestQuiz_BuildProfileIncomplete(t *testing.T) {
	svc := newTestQuizService()
	session, _, _ := svc.Start("")
	if _, _, _, err := svc.Answer(session.ID, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	stored, _ := svc.Session(session.ID)

	if _, err := svc.BuildProfile(stored); !errors.Is(err, ErrQuizIncomplete) {
		t.Fatalf("expected ErrQuizIncomplete got %v", err)
	}
}

func TestQuiz_RecordShownCapsList(t *testing.T) {
	svc := newTestQuizService()
	session, _, _ := svc.Start("")

	var names []string
	for i := 0; i < 12; i++ {
		names = append(names, fmt.Sprintf("Scientist %02d", i))
	}
	updated, err := svc.RecordShown(session.ID, names)
	if err != nil {
		t.Fatalf("record shown: %v", err)
	}

	if len(updated.RecentlyShown) != recentlyShownCap {
		t.Fatalf("expected cap of %d got %d", recentlyShownCap, len(updated.RecentlyShown))
	}
	if updated.RecentlyShown[0] != "Scientist 03" {
		t.Fatalf("expected oldest entries evicted, got %v", updated.RecentlyShown)
	}
	if updated.RecentlyShown[len(updated.RecentlyShown)-1] != "Scientist 11" {
		t.Fatalf("expected newest entry kept, got %v", updated.RecentlyShown)
	}
}

func TestQuiz_ResetKeepsRecentlyShown(t *testing.T) {
	svc := newTestQuizService()
	session, _, _ := svc.Start("life")
	for i := 0; i < len(quizQuestions); i++ {
		if _, _, _, err := svc.Answer(session.ID, 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if _, err := svc.RecordShown(session.ID, []string{"Janaki Ammal"}); err != nil {
		t.Fatalf("record shown: %v", err)
	}

	reset, err := svc.Reset(session.ID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(reset.Answers) != 0 {
		t.Fatalf("expected answers cleared, got %d", len(reset.Answers))
	}
	if len(reset.RecentlyShown) != 1 || reset.RecentlyShown[0] != "Janaki Ammal" {
		t.Fatalf("recently shown should survive reset, got %v", reset.RecentlyShown)
	}
	if reset.Domain != "life" {
		t.Fatalf("domain should survive reset, got %q", reset.Domain)
	}
}

func TestQuestions_CoverAllDimensionsInOrder(t *testing.T) {
	qs := Questions()
	if len(qs) != 12 {
		t.Fatalf("expected 12 questions got %d", len(qs))
	}
	for i, q := range qs {
		if q.Dimension != domain.Dimensions[i] {
			t.Fatalf("question %d: dimension %s out of order", i+1, q.Dimension)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options got %d", i+1, len(q.Options))
		}
		for _, opt := range q.Options {
			if opt.MapsTo == "" || opt.Text == "" {
				t.Fatalf("question %d has an empty option", i+1)
			}
		}
	}
}
