package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CheckoutLockRepository keeps at most one checkout attempt in flight
// per client session, so a double submit cannot create two payment
// sessions. The TTL bounds the lock if a crash skips Release.
type CheckoutLockRepository interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// ---------- Redis ----------

type redisCheckoutLockRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisCheckoutLockRepository(rdb *redis.Client, log *zap.Logger) CheckoutLockRepository {
	return &redisCheckoutLockRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "checkout_lock")),
	}
}

func checkoutKey(key string) string {
	return "checkout:" + key
}

func (r *redisCheckoutLockRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, checkoutKey(key), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire checkout lock: %w", err)
	}
	return ok, nil
}

func (r *redisCheckoutLockRepository) Release(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, checkoutKey(key)).Err(); err != nil {
		return fmt.Errorf("release checkout lock: %w", err)
	}
	return nil
}

// ---------- In-memory fallback ----------

type memoryCheckoutLockRepository struct {
	mu    sync.Mutex
	locks map[string]time.Time
}

func NewMemoryCheckoutLockRepository() CheckoutLockRepository {
	return &memoryCheckoutLockRepository{locks: make(map[string]time.Time)}
}

func (r *memoryCheckoutLockRepository) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if expiry, ok := r.locks[key]; ok && time.Now().Before(expiry) {
		return false, nil
	}
	r.locks[key] = time.Now().Add(ttl)
	return true, nil
}

func (r *memoryCheckoutLockRepository) Release(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, key)
	return nil
}
