// Package apiclient is a typed HTTP client for the blog REST API. It mirrors
// the five post operations and normalizes non-2xx responses into errors
// carrying the server-supplied message.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Rekha718/blogapp/internal/domain"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the API rooted at baseURL (e.g. "http://localhost:3000").
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpc: http.DefaultClient}
}

// NewWithHTTPClient creates a Client using a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpc: httpc}
}

// ListPosts fetches every post.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post and returns the stored record with its
// server-assigned id and timestamps.
func (c *Client) CreatePost(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces the mutable fields of a post and returns the new state.
func (c *Client) UpdatePost(ctx context.Context, id uint, req domain.UpdatePostRequest) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/%d", id), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post by id.
func (c *Client) DeletePost(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil)
}

// do executes one request. A non-2xx status yields an *APIError whose message
// is the server's "error" field when the body is parseable JSON, and a generic
// message otherwise. A 2xx response with an empty body resolves without
// decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "Request failed. Unexpected response."}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &errBody); err == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
