package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"cinehub-client/internal/data/entity"
)

// AddMovieRequest carries the admin form for a new backend movie row.
// The poster binary is forwarded as-is in a multipart field.
type AddMovieRequest struct {
	Title       string
	Language    string
	Genre       []string
	IsSubtitle  bool
	Subtitle    string
	Description string
	PosterName  string
	Poster      io.Reader
}

type MovieGateway interface {
	List(ctx context.Context) ([]entity.MovieRecord, error)
	Add(ctx context.Context, req *AddMovieRequest) (*entity.MovieRecord, error)
}

type movieGateway struct {
	client *Client
}

func NewMovieGateway(client *Client) MovieGateway {
	return &movieGateway{client: client}
}

type moviePayload struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Language    string   `json:"language"`
	Genre       []string `json:"genre"`
	IsSubtitle  bool     `json:"isSubtitle"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	UpdatedAt   string   `json:"updatedAt"`
}

func (p *moviePayload) toEntity() entity.MovieRecord {
	rec := entity.MovieRecord{
		ID:          p.ID,
		Title:       p.Title,
		Language:    p.Language,
		Genre:       p.Genre,
		IsSubtitle:  p.IsSubtitle,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Poster:      p.Poster,
	}
	if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return rec
}

func (g *movieGateway) List(ctx context.Context) ([]entity.MovieRecord, error) {
	var payload []moviePayload
	if err := g.client.do(ctx, http.MethodGet, "/movies/getMovie", nil, &payload); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movies := make([]entity.MovieRecord, len(payload))
	for i, p := range payload {
		movies[i] = p.toEntity()
	}
	return movies, nil
}

func (g *movieGateway) Add(ctx context.Context, req *AddMovieRequest) (*entity.MovieRecord, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	genreJSON, err := json.Marshal(req.Genre)
	if err != nil {
		return nil, fmt.Errorf("encode genres: %w", err)
	}

	fields := map[string]string{
		"title":       req.Title,
		"language":    req.Language,
		"genre":       string(genreJSON),
		"isSubtitle":  fmt.Sprintf("%t", req.IsSubtitle),
		"subtitle":    req.Subtitle,
		"description": req.Description,
	}
	// Subtitle text only travels when subtitles are enabled.
	if !req.IsSubtitle {
		fields["subtitle"] = ""
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if req.Poster != nil {
		part, err := form.CreateFormFile("poster", req.PosterName)
		if err != nil {
			return nil, fmt.Errorf("create poster field: %w", err)
		}
		if _, err := io.Copy(part, req.Poster); err != nil {
			return nil, fmt.Errorf("copy poster: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	var result struct {
		Movie moviePayload `json:"movie"`
	}
	if err := g.client.doMultipart(ctx, http.MethodPost, "/movies/addMovie", form.FormDataContentType(), &buf, &result); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}

	movie := result.Movie.toEntity()
	return &movie, nil
}
