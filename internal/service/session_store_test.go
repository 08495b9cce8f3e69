package service

import (
	"errors"
	"testing"
	"time"

	"scientist-twin/internal/domain"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryQuizSessionStore()
	session := domain.QuizSession{
		ID:        "s1",
		Domain:    "cosmos",
		Answers:   []int{0, 1, 2},
		CreatedAt: time.Now().UTC(),
	}

	if err := store.Save(session, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get("s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Domain != "cosmos" || len(got.Answers) != 3 {
		t.Fatalf("unexpected session %+v", got)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryQuizSessionStore()
	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound got %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryQuizSessionStore()
	session := domain.QuizSession{ID: "s1"}

	if err := store.Save(session, -time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Get("s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryQuizSessionStore()
	if err := store.Save(domain.QuizSession{ID: "s1"}, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete("s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected deleted session to be gone, got %v", err)
	}
}

func TestMemoryStore_RejectsEmptyID(t *testing.T) {
	store := NewMemoryQuizSessionStore()
	if err := store.Save(domain.QuizSession{}, time.Hour); err == nil {
		t.Fatalf("expected error for empty session id")
	}
}
