package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"scientist-twin/internal/domain"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizSessionStore keeps quiz state between requests. Sessions expire after
// the configured TTL.
type QuizSessionStore interface {
	Save(session domain.QuizSession, ttl time.Duration) error
	Get(id string) (domain.QuizSession, error)
	Delete(id string) error
}

type memorySessionEntry struct {
	session   domain.QuizSession
	expiresAt time.Time
}

type memoryQuizSessionStore struct {
	mu    sync.Mutex
	items map[string]memorySessionEntry
}

func NewMemoryQuizSessionStore() QuizSessionStore {
	return &memoryQuizSessionStore{
		items: make(map[string]memorySessionEntry),
	}
}

func (s *memoryQuizSessionStore) Save(session domain.QuizSession, ttl time.Duration) error {
	if strings.TrimSpace(session.ID) == "" {
		return ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.ID] = memorySessionEntry{
		session:   session,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memoryQuizSessionStore) Get(id string) (domain.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[id]
	if !ok {
		return domain.QuizSession{}, ErrSessionNotFound
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, id)
		return domain.QuizSession{}, ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *memoryQuizSessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type redisQuizSessionStore struct {
	client *redis.Client
	prefix string
}

func NewRedisQuizSessionStore(client *redis.Client) QuizSessionStore {
	if client == nil {
		return nil
	}
	return &redisQuizSessionStore{
		client: client,
		prefix: "quiz:session:",
	}
}

func (s *redisQuizSessionStore) Save(session domain.QuizSession, ttl time.Duration) error {
	if strings.TrimSpace(session.ID) == "" {
		return ErrSessionNotFound
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+session.ID, payload, ttl).Err()
}

func (s *redisQuizSessionStore) Get(id string) (domain.QuizSession, error) {
	if strings.TrimSpace(id) == "" {
		return domain.QuizSession{}, ErrSessionNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	payload, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.QuizSession{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.QuizSession{}, err
	}
	var session domain.QuizSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.QuizSession{}, err
	}
	return session, nil
}

func (s *redisQuizSessionStore) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+id).Err()
}
