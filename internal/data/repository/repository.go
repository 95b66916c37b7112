package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repository groups the client-local state stores. Nothing durable lives
// here: sessions, settlement marks, checkout locks and the catalog cache
// are all expiring keys. When Redis is unreachable the stores degrade to
// in-process maps so a single instance keeps working.
type Repository struct {
	Session    SessionRepository
	Settlement SettlementRepository
	Checkout   CheckoutLockRepository
	MovieCache MovieCacheRepository
}

func NewRepository(rdb *redis.Client, log *zap.Logger) *Repository {
	if rdb == nil {
		log.Warn("Redis not available, using in-memory stores")
		return &Repository{
			Session:    NewMemorySessionRepository(),
			Settlement: NewMemorySettlementRepository(),
			Checkout:   NewMemoryCheckoutLockRepository(),
			MovieCache: NewMemoryMovieCacheRepository(),
		}
	}

	return &Repository{
		Session:    NewRedisSessionRepository(rdb, log),
		Settlement: NewRedisSettlementRepository(rdb, log),
		Checkout:   NewRedisCheckoutLockRepository(rdb, log),
		MovieCache: NewRedisMovieCacheRepository(rdb, log),
	}
}

// NewRedisClient connects to Redis and pings it with a short timeout.
// Returns nil on failure; callers fall back to in-memory stores.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
