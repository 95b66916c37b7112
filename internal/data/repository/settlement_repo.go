package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SettlementRepository enforces at-most-one order creation per payment
// session id. MarkSettled is first-writer-wins: only the caller that
// gets first=true may submit the order. The mark starts out pending;
// ConfirmSettled flips it to done once the order is recorded, so a
// concurrent duplicate can tell a finished settlement from one still
// in flight.
type SettlementRepository interface {
	MarkSettled(ctx context.Context, sessionID string, ttl time.Duration) (first bool, err error)
	ConfirmSettled(ctx context.Context, sessionID string, ttl time.Duration) error
	IsConfirmed(ctx context.Context, sessionID string) (bool, error)
	ClearMark(ctx context.Context, sessionID string) error
}

const (
	settlementPending = "pending"
	settlementDone    = "done"
)

// ---------- Redis ----------

type redisSettlementRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisSettlementRepository(rdb *redis.Client, log *zap.Logger) SettlementRepository {
	return &redisSettlementRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "settlement")),
	}
}

func settlementKey(sessionID string) string {
	return "settled:" + sessionID
}

func (r *redisSettlementRepository) MarkSettled(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	first, err := r.rdb.SetNX(ctx, settlementKey(sessionID), settlementPending, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark settlement %s: %w", sessionID, err)
	}
	return first, nil
}

func (r *redisSettlementRepository) ConfirmSettled(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, settlementKey(sessionID), settlementDone, ttl).Err(); err != nil {
		return fmt.Errorf("confirm settlement %s: %w", sessionID, err)
	}
	return nil
}

func (r *redisSettlementRepository) IsConfirmed(ctx context.Context, sessionID string) (bool, error) {
	val, err := r.rdb.Get(ctx, settlementKey(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read settlement mark %s: %w", sessionID, err)
	}
	return val == settlementDone, nil
}

func (r *redisSettlementRepository) ClearMark(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, settlementKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear settlement mark %s: %w", sessionID, err)
	}
	return nil
}

// ---------- In-memory fallback ----------

type settlementMark struct {
	done   bool
	expiry time.Time
}

type memorySettlementRepository struct {
	mu      sync.Mutex
	settled map[string]settlementMark
}

func NewMemorySettlementRepository() SettlementRepository {
	return &memorySettlementRepository{settled: make(map[string]settlementMark)}
}

func (r *memorySettlementRepository) MarkSettled(_ context.Context, sessionID string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mark, ok := r.settled[sessionID]; ok && time.Now().Before(mark.expiry) {
		return false, nil
	}
	r.settled[sessionID] = settlementMark{expiry: time.Now().Add(ttl)}
	return true, nil
}

func (r *memorySettlementRepository) ConfirmSettled(_ context.Context, sessionID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled[sessionID] = settlementMark{done: true, expiry: time.Now().Add(ttl)}
	return nil
}

func (r *memorySettlementRepository) IsConfirmed(_ context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mark, ok := r.settled[sessionID]
	if !ok || time.Now().After(mark.expiry) {
		return false, nil
	}
	return mark.done, nil
}

func (r *memorySettlementRepository) ClearMark(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settled, sessionID)
	return nil
}
