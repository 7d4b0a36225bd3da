// Package client is the typed HTTP client for the task list API. It shares
// the domain types with the server, so the response contract lives in one
// place rather than being re-declared on each side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tasklist/internal/domain"
)

const defaultTimeout = 10 * time.Second

// listCacheKey is the fixed cache key for the list-tasks call. There is a
// single unparameterized list query, so one key covers it.
const listCacheKey = "tasks:list"

type Client struct {
	baseURL string
	http    *http.Client
	cache   *ttlCache
}

type Option func(*Client)

// WithTimeout bounds each request. Timeouts surface as regular errors.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithCacheTTL enables the client-side response cache for list calls.
// Within the freshness window repeated fetches reuse the prior result.
// Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.cache = newTTLCache(d) }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TaskList is the body of a successful list-tasks response.
type TaskList struct {
	Tasks []domain.Task `json:"tasks"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// ListTasks fetches every task, most recently created first. A fresh cached
// result is returned without a network call when caching is enabled.
func (c *Client) ListTasks(ctx context.Context) (*TaskList, error) {
	if c.cache != nil {
		if cached, ok := c.cache.get(listCacheKey); ok {
			return cached.(*TaskList), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tasks", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.asError(resp)
	}

	var list TaskList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}

	if c.cache != nil {
		c.cache.set(listCacheKey, &list)
	}
	return &list, nil
}

// TaskCount returns the number of tasks currently stored.
func (c *Client) TaskCount(ctx context.Context) (int, error) {
	list, err := c.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	return len(list.Tasks), nil
}

// CreateTask creates a task for the given user and returns it with its
// assigned id and timestamp. A successful write invalidates the list cache.
func (c *Client) CreateTask(ctx context.Context, userID int64, title string, description *string) (*domain.Task, error) {
	body, err := json.Marshal(map[string]any{
		"userId":      userID,
		"title":       title,
		"description": description,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tasks", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.asError(resp)
	}

	var out struct {
		Task domain.Task `json:"task"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}

	if c.cache != nil {
		c.cache.invalidate(listCacheKey)
	}
	return &out.Task, nil
}

// asError converts a non-2xx response into an error carrying the server's
// message when the error envelope decodes, or the status code otherwise.
func (c *Client) asError(resp *http.Response) error {
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
		return fmt.Errorf("server: %s (status %d)", env.Error, resp.StatusCode)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}
