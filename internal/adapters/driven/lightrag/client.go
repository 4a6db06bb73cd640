// Package lightrag provides a knowledge-base adapter for a LightRAG
// HTTP service.
package lightrag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsync-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.KnowledgeBase = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8020"
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles write traffic so a large batch does not
	// flood the indexing service (requests per second).
	ProactiveRate = 10

	// maxBodyExcerpt bounds the response-body excerpt kept in error
	// messages.
	maxBodyExcerpt = 512
)

// Config holds configuration for the LightRAG client.
type Config struct {
	// BaseURL is the service base URL (default: http://localhost:8020).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s). There is no
	// run-level deadline; this is the only cancellation mechanism
	// besides the caller's context.
	Timeout time.Duration
}

// Client performs single-shot HTTP operations against a LightRAG
// service. Every operation is one request: no retries, no backoff.
// The client is stateless and safe for concurrent use.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// insertRequest is the /insert and /update request format.
type insertRequest struct {
	Input    string         `json:"input"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// searchRequest is the /search request format.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// searchResponse is the /search response format.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID       string         `json:"id"`
	Content  string         `json:"content"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

// NewClient creates a new LightRAG client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Health checks that the service is reachable and ready.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("lightrag: create health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("lightrag: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("lightrag: health returned status %d: %s",
			resp.StatusCode, bodyExcerpt(resp.Body))
	}
	return nil
}

// Insert stores a new document.
func (c *Client) Insert(ctx context.Context, content string, metadata map[string]any) error {
	err := c.send(ctx, http.MethodPost, "/insert", insertRequest{Input: content, Metadata: metadata})
	if err != nil {
		return err
	}

	logger.Info("Document inserted successfully")
	return nil
}

// Update replaces the document addressed by docID.
func (c *Client) Update(ctx context.Context, docID, content string, metadata map[string]any) error {
	err := c.send(ctx, http.MethodPut, "/update/"+docID, insertRequest{Input: content, Metadata: metadata})
	if err != nil {
		return err
	}

	logger.Info("Document %s updated successfully", docID)
	return nil
}

// Delete removes the document addressed by docID.
func (c *Client) Delete(ctx context.Context, docID string) error {
	err := c.send(ctx, http.MethodDelete, "/delete/"+docID, nil)
	if err != nil {
		return err
	}

	logger.Info("Document %s deleted successfully", docID)
	return nil
}

// Search queries indexed documents. Search is advisory: failures are
// logged and reported as an empty result, never as an error.
func (c *Client) Search(ctx context.Context, query string, limit int) []domain.SearchResult {
	if err := c.limiter.Wait(ctx); err != nil {
		logger.Error("search request cancelled: %v", err)
		return nil
	}

	jsonBody, err := json.Marshal(searchRequest{Query: query, Limit: limit})
	if err != nil {
		logger.Error("marshal search request: %v", err)
		return nil
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(jsonBody))
	if err != nil {
		logger.Error("create search request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		logger.Error("search failed (status %d): %s", resp.StatusCode, bodyExcerpt(resp.Body))
		return nil
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		logger.Error("decode search response: %v", err)
		return nil
	}

	results := make([]domain.SearchResult, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		results = append(results, domain.SearchResult{
			ID:       r.ID,
			Content:  r.Content,
			Score:    r.Score,
			Metadata: r.Metadata,
		})
	}
	return results
}

// send performs one write request. A non-2xx status or transport error
// is a final failure for that call; the returned error carries the
// status code and a body excerpt for remote diagnosis.
func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("lightrag: request cancelled: %w", err)
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("lightrag: marshal request: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("lightrag: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("lightrag: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("lightrag: %s %s returned status %d: %s",
			method, path, resp.StatusCode, bodyExcerpt(resp.Body))
	}

	return nil
}

// isSuccess reports whether the status code is in the 2xx class.
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// bodyExcerpt reads a bounded excerpt of a response body for error
// messages.
func bodyExcerpt(body io.Reader) string {
	excerpt, err := io.ReadAll(io.LimitReader(body, maxBodyExcerpt))
	if err != nil {
		return "(unreadable body)"
	}
	return strings.TrimSpace(string(excerpt))
}
