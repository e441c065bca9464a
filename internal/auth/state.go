package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/redis"
)

const DefaultStateTTL = 10 * time.Minute

type StateEntry struct {
	CreatedAt   time.Time `json:"created_at"`
	Provider    string    `json:"provider"`
	UserAgent   string    `json:"user_agent"`
	RedirectURI string    `json:"redirect_uri"`
}

// StateStore holds one-time OAuth state tokens between the redirect to a
// provider and its callback.
type StateStore interface {
	Generate(ctx context.Context, provider, userAgent, redirectURI string) (string, error)
	// Consume removes the token and returns its entry. A token is valid once.
	Consume(ctx context.Context, state, provider string) (*StateEntry, error)
}

// NewStateStore uses Redis when a client is available and memory otherwise.
func NewStateStore(client *redis.Client, ttl time.Duration) StateStore {
	if client == nil {
		return NewMemoryStateStore(ttl)
	}
	return NewRedisStateStore(client, ttl)
}

func newStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func checkEntry(entry *StateEntry, provider string, ttl time.Duration, now time.Time) error {
	if now.Sub(entry.CreatedAt) > ttl {
		return errors.Unauthorized("state token has expired")
	}
	if entry.Provider != provider {
		return errors.Unauthorized("state token provider mismatch")
	}
	return nil
}

type MemoryStateStore struct {
	states map[string]StateEntry
	ttl    time.Duration
	now    func() time.Time
	mutex  sync.Mutex
}

func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &MemoryStateStore{
		states: make(map[string]StateEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *MemoryStateStore) Generate(ctx context.Context, provider, userAgent, redirectURI string) (string, error) {
	state, err := newStateToken()
	if err != nil {
		return "", err
	}

	m.mutex.Lock()
	m.states[state] = StateEntry{
		CreatedAt:   m.now(),
		Provider:    provider,
		UserAgent:   userAgent,
		RedirectURI: redirectURI,
	}
	m.mutex.Unlock()

	slog.Debug("OAuth state token generated", "component", "state_store", "provider", provider, "backend", "memory")
	return state, nil
}

func (m *MemoryStateStore) Consume(ctx context.Context, state, provider string) (*StateEntry, error) {
	if state == "" {
		return nil, errors.Validation("state token is required")
	}

	m.mutex.Lock()
	entry, exists := m.states[state]
	delete(m.states, state)
	m.mutex.Unlock()

	if !exists {
		return nil, errors.Unauthorized("invalid or expired state token")
	}
	if err := checkEntry(&entry, provider, m.ttl, m.now()); err != nil {
		return nil, err
	}
	return &entry, nil
}

// StartCleanup drops expired tokens every interval until ctx is done.
func (m *MemoryStateStore) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.cleanupExpired()
			}
		}
	}()
}

func (m *MemoryStateStore) cleanupExpired() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	expired := 0
	for state, entry := range m.states {
		if now.Sub(entry.CreatedAt) > m.ttl {
			delete(m.states, state)
			expired++
		}
	}

	if expired > 0 {
		slog.Debug("Cleaned up expired state tokens",
			"component", "state_store",
			"expired_count", expired,
			"remaining_count", len(m.states))
	}
	return expired
}

func (m *MemoryStateStore) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.states)
}

type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &RedisStateStore{client: client, ttl: ttl}
}

func stateKey(state string) string {
	return "oauth_state:" + state
}

func (s *RedisStateStore) Generate(ctx context.Context, provider, userAgent, redirectURI string) (string, error) {
	state, err := newStateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(StateEntry{
		CreatedAt:   time.Now(),
		Provider:    provider,
		UserAgent:   userAgent,
		RedirectURI: redirectURI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode state entry: %w", err)
	}

	if err := s.client.Set(ctx, stateKey(state), payload, s.ttl).Err(); err != nil {
		return "", errors.WrapExternal("failed to store state token", err)
	}

	slog.Debug("OAuth state token generated", "component", "state_store", "provider", provider, "backend", "redis")
	return state, nil
}

func (s *RedisStateStore) Consume(ctx context.Context, state, provider string) (*StateEntry, error) {
	if state == "" {
		return nil, errors.Validation("state token is required")
	}

	payload, err := s.client.GetDel(ctx, stateKey(state)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.Unauthorized("invalid or expired state token")
		}
		return nil, errors.WrapExternal("failed to read state token", err)
	}

	var entry StateEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, errors.WrapInternal("corrupt state entry", err)
	}
	if err := checkEntry(&entry, provider, s.ttl, time.Now()); err != nil {
		return nil, err
	}
	return &entry, nil
}
