// Package api implements the HTTP client for the SOP RAG backend.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diogo/sopchat/internal/models"
)

// defaultTimeout bounds every request; the backend answers within seconds
// and no retry or cancellation layer exists above this client.
const defaultTimeout = 120 * time.Second

// Client is the HTTP client for the SOP RAG backend API.
type Client struct {
	baseURL    string
	topK       int
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithTopK sets the number of document chunks requested per query
func WithTopK(topK int) ClientOption {
	return func(c *Client) {
		c.topK = topK
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request debug output
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new Client for the given base URL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		topK:       models.DefaultTopK,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.topK <= 0 {
		client.topK = models.DefaultTopK
	}

	return client, nil
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TopK returns the configured top_k value
func (c *Client) TopK() int {
	return c.topK
}

// endpoint joins the base URL with an endpoint path
func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}
