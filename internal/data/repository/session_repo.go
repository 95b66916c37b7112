package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinehub-client/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SessionRepository stores client sessions: the binding from a session
// cookie to the backend bearer token issued at login.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.ClientSession) error
	Find(ctx context.Context, id uuid.UUID) (*entity.ClientSession, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// ---------- Redis ----------

type redisSessionRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisSessionRepository(rdb *redis.Client, log *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "session")),
	}
}

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func (r *redisSessionRepository) Create(ctx context.Context, session *entity.ClientSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := r.rdb.Set(ctx, sessionKey(session.ID), raw, ttl).Err(); err != nil {
		r.log.Error("Failed to store session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Find(ctx context.Context, id uuid.UUID) (*entity.ClientSession, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session entity.ClientSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *redisSessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// ---------- In-memory fallback ----------

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]entity.ClientSession
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]entity.ClientSession),
	}
}

func (r *memorySessionRepository) Create(_ context.Context, session *entity.ClientSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *memorySessionRepository) Find(_ context.Context, id uuid.UUID) (*entity.ClientSession, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepository) Revoke(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
