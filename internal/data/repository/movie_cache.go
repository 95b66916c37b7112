package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinehub-client/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MovieCacheRepository caches catalog lookups so repeated detail/slot
// views don't re-hit the external catalog. A miss returns (nil, nil).
type MovieCacheRepository interface {
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Set(ctx context.Context, movie *entity.Movie, ttl time.Duration) error
}

// ---------- Redis ----------

type redisMovieCacheRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisMovieCacheRepository(rdb *redis.Client, log *zap.Logger) MovieCacheRepository {
	return &redisMovieCacheRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "movie_cache")),
	}
}

func movieKey(id string) string {
	return "movie:" + id
}

func (r *redisMovieCacheRepository) Get(ctx context.Context, id string) (*entity.Movie, error) {
	raw, err := r.rdb.Get(ctx, movieKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cached movie %s: %w", id, err)
	}

	var movie entity.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return nil, fmt.Errorf("decode cached movie %s: %w", id, err)
	}
	return &movie, nil
}

func (r *redisMovieCacheRepository) Set(ctx context.Context, movie *entity.Movie, ttl time.Duration) error {
	raw, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("encode movie: %w", err)
	}
	if err := r.rdb.Set(ctx, movieKey(movie.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache movie %s: %w", movie.ID, err)
	}
	return nil
}

// ---------- In-memory fallback ----------

type cachedMovie struct {
	movie  entity.Movie
	expiry time.Time
}

type memoryMovieCacheRepository struct {
	mu     sync.RWMutex
	movies map[string]cachedMovie
}

func NewMemoryMovieCacheRepository() MovieCacheRepository {
	return &memoryMovieCacheRepository{movies: make(map[string]cachedMovie)}
}

func (r *memoryMovieCacheRepository) Get(_ context.Context, id string) (*entity.Movie, error) {
	r.mu.RLock()
	cached, ok := r.movies[id]
	r.mu.RUnlock()

	if !ok || time.Now().After(cached.expiry) {
		return nil, nil
	}
	movie := cached.movie
	return &movie, nil
}

func (r *memoryMovieCacheRepository) Set(_ context.Context, movie *entity.Movie, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movies[movie.ID] = cachedMovie{movie: *movie, expiry: time.Now().Add(ttl)}
	return nil
}
