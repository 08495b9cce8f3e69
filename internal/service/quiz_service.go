package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"scientist-twin/internal/domain"
)

const recentlyShownCap = 9

var ErrQuizIncomplete = errors.New("quiz incomplete")

// QuizService walks a caller through the question deck and turns the
// collected answers into a trait profile.
type QuizService struct {
	store QuizSessionStore
	ttl   time.Duration
}

func NewQuizService(store QuizSessionStore, ttl time.Duration) *QuizService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &QuizService{store: store, ttl: ttl}
}

// Start opens a new session for the chosen domain and returns the first
// question.
func (s *QuizService) Start(domainKey string) (domain.QuizSession, domain.Question, error) {
	session := domain.QuizSession{
		ID:        uuid.NewString(),
		Domain:    domainKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(session, s.ttl); err != nil {
		return domain.QuizSession{}, domain.Question{}, fmt.Errorf("save quiz session: %w", err)
	}
	return session, quizQuestions[0], nil
}

// Session loads an existing quiz session.
func (s *QuizService) Session(id string) (domain.QuizSession, error) {
	return s.store.Get(id)
}

// Answer records the chosen option for the current question. It returns the
// next question, or done=true once all questions are answered. Answering a
// finished quiz is a no-op that reports done.
func (s *QuizService) Answer(sessionID string, optionIndex int) (domain.QuizSession, *domain.Question, bool, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return domain.QuizSession{}, nil, false, err
	}

	if len(session.Answers) >= len(quizQuestions) {
		return session, nil, true, nil
	}

	session.Answers = append(session.Answers, optionIndex)
	if err := s.store.Save(session, s.ttl); err != nil {
		return domain.QuizSession{}, nil, false, fmt.Errorf("save quiz session: %w", err)
	}

	if len(session.Answers) >= len(quizQuestions) {
		return session, nil, true, nil
	}
	next := quizQuestions[len(session.Answers)]
	return session, &next, false, nil
}

// BuildProfile maps the 12 recorded answer indexes onto trait values.
// Out-of-range indexes fall back to the first option rather than failing
// the whole quiz.
func (s *QuizService) BuildProfile(session domain.QuizSession) (domain.Profile, error) {
	if len(session.Answers) < len(quizQuestions) {
		return domain.Profile{}, ErrQuizIncomplete
	}

	var profile domain.Profile
	for i, q := range quizQuestions {
		idx := session.Answers[i]
		if idx < 0 || idx >= len(q.Options) {
			idx = 0
		}
		profile.Set(q.Dimension, q.Options[idx].MapsTo)
	}
	return profile, nil
}

// RecordShown appends match names to the session's recently-shown list so a
// retake skips them. The list keeps only the most recent entries.
func (s *QuizService) RecordShown(sessionID string, names []string) (domain.QuizSession, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return domain.QuizSession{}, err
	}

	session.RecentlyShown = append(session.RecentlyShown, names...)
	if n := len(session.RecentlyShown); n > recentlyShownCap {
		session.RecentlyShown = session.RecentlyShown[n-recentlyShownCap:]
	}

	if err := s.store.Save(session, s.ttl); err != nil {
		return domain.QuizSession{}, fmt.Errorf("save quiz session: %w", err)
	}
	return session, nil
}

// Reset clears answers and recently-shown state, keeping the session ID so
// an issued token stays valid for a retake.
func (s *QuizService) Reset(sessionID string) (domain.QuizSession, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return domain.QuizSession{}, err
	}
	session.Answers = nil
	if err := s.store.Save(session, s.ttl); err != nil {
		return domain.QuizSession{}, fmt.Errorf("save quiz session: %w", err)
	}
	return session, nil
}
