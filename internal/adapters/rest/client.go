// internal/adapters/rest/client.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
)

// Client is the HTTP adapter for the remote component service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Statically assert that *Client implements the ComponentService interface.
var _ ports.ComponentService = (*Client)(nil)

// Config holds REST client configuration
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new component service client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("adapter", "rest")),
	}
}

// errorBody is the backend's structured error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// List retrieves one page of the collection matching the criteria.
func (c *Client) List(ctx context.Context, criteria domain.ListCriteria, page domain.Pagination) (*ports.ListResult, error) {
	query := criteria.QueryValues()
	for k, vs := range page.QueryValues() {
		for _, v := range vs {
			query.Set(k, v)
		}
	}

	var result ports.ListResult
	if err := c.do(ctx, http.MethodGet, "/components", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single component by id.
func (c *Client) Get(ctx context.Context, id string) (*domain.Component, error) {
	var comp domain.Component
	if err := c.do(ctx, http.MethodGet, "/components/"+url.PathEscape(id), nil, nil, &comp); err != nil {
		return nil, err
	}
	return &comp, nil
}

// Create registers a new component and returns the stored record.
func (c *Client) Create(ctx context.Context, comp *domain.Component) (*domain.Component, error) {
	var created domain.Component
	if err := c.do(ctx, http.MethodPost, "/components", nil, comp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the full record.
func (c *Client) Update(ctx context.Context, id string, comp *domain.Component) (*domain.Component, error) {
	var updated domain.Component
	if err := c.do(ctx, http.MethodPut, "/components/"+url.PathEscape(id), nil, comp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateQuantity performs the narrow quantity-only update. The backend
// appends an audit log entry for it.
func (c *Client) UpdateQuantity(ctx context.Context, id string, q domain.QuantityUpdate) (*domain.Component, error) {
	var updated domain.Component
	if err := c.do(ctx, http.MethodPut, "/components/"+url.PathEscape(id)+"/quantity", nil, q, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a component.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/components/"+url.PathEscape(id), nil, nil, nil)
}

// Categories returns the open category set known to the backend.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/components/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Locations returns the known storage locations.
func (c *Client) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	if err := c.do(ctx, http.MethodGet, "/components/locations", nil, nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// LowStock returns components at or below their critical-low threshold.
func (c *Client) LowStock(ctx context.Context) ([]*domain.Component, error) {
	var components []*domain.Component
	if err := c.do(ctx, http.MethodGet, "/components/low-stock", nil, nil, &components); err != nil {
		return nil, err
	}
	return components, nil
}

// Stats returns the server-aggregated dashboard figures.
func (c *Client) Stats(ctx context.Context) (*ports.InventoryStats, error) {
	var stats ports.InventoryStats
	if err := c.do(ctx, http.MethodGet, "/components/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures become NetworkError; non-2xx responses become
// ServiceError carrying the backend's message when it sent one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration_ms", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.serviceError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) serviceError(resp *http.Response) error {
	se := &ServiceError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Error != "" {
				se.Message = eb.Error
			} else if eb.Message != "" {
				se.Message = eb.Message
			}
		}
	}
	return se
}
