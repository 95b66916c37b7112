package usecase

import (
	"context"
	"time"

	"cinehub-client/internal/data/entity"
	"cinehub-client/internal/data/gateway"
	"cinehub-client/internal/data/repository"
	"cinehub-client/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	// GetMovie resolves a movie id against the cache and the external
	// catalog. On any failure it returns a placeholder with pending=true;
	// a missed lookup is "still loading", never a terminal error.
	GetMovie(ctx context.Context, id string) (movie *entity.Movie, pending bool)

	Detail(ctx context.Context, id string) *response.MovieDetailResponse

	// Trending is the curated landing page rail.
	Trending() []response.MovieCardResponse
}

type catalogService struct {
	catalog  gateway.MovieCatalog
	cache    repository.MovieCacheRepository
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewCatalogService(
	catalog gateway.MovieCatalog,
	cache repository.MovieCacheRepository,
	cacheTTL time.Duration,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		catalog:  catalog,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovie(ctx context.Context, id string) (*entity.Movie, bool) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, false
	}

	movie, err := s.catalog.Lookup(ctx, id)
	if err != nil {
		s.log.Warn("Catalog lookup failed", zap.Error(err), zap.String("movie_id", id))
		return entity.PlaceholderMovie(id), true
	}

	if err := s.cache.Set(ctx, movie, s.cacheTTL); err != nil {
		s.log.Warn("Failed to cache movie", zap.Error(err), zap.String("movie_id", id))
	}
	return movie, false
}

func (s *catalogService) Detail(ctx context.Context, id string) *response.MovieDetailResponse {
	movie, pending := s.GetMovie(ctx, id)
	return &response.MovieDetailResponse{
		Pending: pending,
		Movie:   response.MovieToResponse(movie),
	}
}

// Curated landing rail. These are editorial picks, not catalog queries;
// ids continue into the detail route like any other movie.
var trendingMovies = []response.MovieCardResponse{
	{ID: "123", Title: "A.R.M", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/arm-et00407124-1726144274.jpg", Rating: 9.5},
	{ID: "124", Title: "Bougainvillea", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/bougainvillea-et00413069-1727432413.jpg", Rating: 9.5},
	{ID: "125", Title: "Venom", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/venom-the-last-dance-et00383474-1729596212.jpg", Rating: 9.5},
	{ID: "126", Title: "Vettaiyan", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/vettaiyan-et00379391-1727938465.jpg", Rating: 9.5},
	{ID: "127", Title: "Devara", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/devara--part-1-et00310216-1712750637.jpg", Rating: 9.5},
	{ID: "128", Title: "The Wild Robot", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/the-wild-robot-et00398665-1725532951.jpg", Rating: 9.5},
	{ID: "129", Title: "Pani", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/pani-et00404167-1720515291.jpg", Rating: 9.5},
	{ID: "130", Title: "Martin", Image: "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/martin-et00328827-1677137256.jpg", Rating: 9.5},
}

func (s *catalogService) Trending() []response.MovieCardResponse {
	out := make([]response.MovieCardResponse, len(trendingMovies))
	copy(out, trendingMovies)
	return out
}
