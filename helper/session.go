package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"quentinhas/model"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps carts between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}

// Sessions is the store used by the HTTP handlers.
var Sessions SessionStore = NewMemorySessionStore(2 * time.Hour)

type MemorySessionStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]model.Session
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{ttl: ttl, items: map[string]model.Session{}}
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok || Now().Sub(s.UpdatedAt) > m.ttl {
		return nil, ErrSessionNotFound
	}
	cp := cloneSession(s)
	return &cp, nil
}

func (m *MemorySessionStore) Save(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[s.ID] = cloneSession(*s)
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Sweep drops sessions idle for longer than the ttl and returns how many were removed.
func (m *MemorySessionStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.items {
		if Now().Sub(s.UpdatedAt) > m.ttl {
			delete(m.items, id)
			removed++
		}
	}
	return removed
}

func cloneSession(s model.Session) model.Session {
	cp := s
	cp.SelectedDates = append([]string(nil), s.SelectedDates...)
	cp.Cart = make(map[string]map[string]int, len(s.Cart))
	for date, items := range s.Cart {
		inner := make(map[string]int, len(items))
		for k, v := range items {
			inner[k] = v
		}
		cp.Cart[date] = inner
	}
	return cp
}

// RedisSessionStore keeps carts as JSON with a sliding ttl.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "quentinhas:session:" + id
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.Cart == nil {
		s.Cart = map[string]map[string]int{}
	}
	return &s, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, s *model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(s.ID), raw, r.ttl).Err()
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
