package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hrp/models"

	"github.com/go-redis/redis/v8"
)

// SessionRepository stores in-progress booking sessions. Sessions are
// ephemeral: an implementation may expire them, and a Get after expiry
// returns ErrSessionNotFound.
type SessionRepository interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionRepository keeps each session as a JSON blob keyed by its ID,
// refreshing the TTL on every save.
type RedisSessionRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionRepository returns a session repository backed by Redis.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{Client: client, TTL: ttl}
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := r.Client.Set(ctx, session.ID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.Client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.Client.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// MemorySessionRepository is a map-backed SessionRepository for tests and
// single-binary development. Sessions round-trip by value so callers observe
// the same load-modify-save behavior as with Redis.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

// NewMemorySessionRepository returns an empty in-memory session repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]models.BookingSession)}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *models.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	stored.Items = append([]models.BookingItem{}, session.Items...)
	r.sessions[session.ID] = stored
	return nil
}

func (r *MemorySessionRepository) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := stored
	out.Items = append([]models.BookingItem{}, stored.Items...)
	return &out, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
