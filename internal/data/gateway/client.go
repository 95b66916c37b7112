package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cinehub-client/pkg/utils"

	"go.uber.org/zap"
)

// Client is the HTTP client for the CineHub REST backend. All booking
// business logic (inventory, pricing, settlement, persistence) lives
// behind it; this repository only consumes it.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(cfg utils.BackendConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With(zap.String("gateway", "backend")),
	}
}

// do performs one backend call. The bearer token, when present on the
// context, is attached as Authorization header; out, when non-nil, is
// filled from the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := utils.GetTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out)
}

// doMultipart performs one backend call with a prebuilt multipart body.
func (c *Client) doMultipart(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if token, ok := utils.GetTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend unreachable",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(req, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
		}
	}
	return nil
}

func (c *Client) mapError(req *http.Request, code int, raw []byte) error {
	msg := backendMessage(raw)

	c.log.Warn("Backend returned error",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", code),
		zap.String("message", msg),
	)

	switch code {
	case http.StatusUnauthorized:
		if msg == "" {
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		if msg == "" {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		return &BackendError{StatusCode: code, Message: msg}
	}
}

// backendMessage pulls a human message out of the backend's error body.
// The backend is inconsistent: some endpoints use {message}, payments
// use {error}.
func backendMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
