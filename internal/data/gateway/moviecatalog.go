package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cinehub-client/internal/data/entity"
	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// MovieCatalog looks up display metadata for a movie id against the
// external movie catalog (OMDb-shaped API). Reads only, no auth.
type MovieCatalog interface {
	Lookup(ctx context.Context, id string) (*entity.Movie, error)
}

type movieCatalog struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewMovieCatalog(cfg utils.CatalogConfig, log *zap.Logger) MovieCatalog {
	return &movieCatalog{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With(zap.String("gateway", "catalog")),
	}
}

func (c *movieCatalog) Lookup(ctx context.Context, id string) (*entity.Movie, error) {
	if id == "" {
		return nil, fmt.Errorf("movie id is required")
	}

	q := url.Values{}
	q.Set("i", id)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Response   string `json:"Response"`
		ImdbID     string `json:"imdbID"`
		Title      string `json:"Title"`
		Poster     string `json:"Poster"`
		Plot       string `json:"Plot"`
		Language   string `json:"Language"`
		ImdbRating string `json:"imdbRating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	if payload.Response != "True" {
		c.log.Warn("Catalog lookup missed", zap.String("movie_id", id))
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, id)
	}

	return &entity.Movie{
		ID:       payload.ImdbID,
		Title:    payload.Title,
		Poster:   payload.Poster,
		Plot:     payload.Plot,
		Language: payload.Language,
		Rating:   payload.ImdbRating,
	}, nil
}
