package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/study-api/internal/config"
	"github.com/phrazzld/study-api/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 1 << 20

// summaryResponse is the subset of the page summary payload the client uses.
type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Client fetches topic summaries from the Wikipedia REST API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.EncyclopediaConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultEncyclopediaURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid encyclopedia base URL %q: %w", cfg.BaseURL, err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	// Outbound calls join the caller's trace.
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	if cfg.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	c := &Client{
		baseURL:    base,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "wikipedia_client")),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// summaryURL builds the summary endpoint for topic. The topic is escaped as a
// single path segment, so slashes and spaces cannot alter the route.
func (c *Client) summaryURL(topic string) string {
	return c.baseURL + "/page/summary/" + url.PathEscape(topic)
}

// FetchTopicData looks up topic and returns its normalized summary.
//
// It returns an error wrapping domain.ErrTopicNotFound when the page does not
// exist, and one wrapping domain.ErrUpstream for any other non-success status,
// transport failure or undecodable body.
func (c *Client) FetchTopicData(ctx context.Context, topic string) (*domain.TopicData, error) {
	endpoint := c.summaryURL(topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.DebugContext(ctx, "fetching topic summary", "topic", topic, "url", endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch topic data: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "topic summary response",
		"topic", topic,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: topic %q not found on Wikipedia", domain.ErrTopicNotFound, topic)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: Wikipedia API error: %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload summaryResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode topic data: %v", domain.ErrUpstream, err)
	}

	return normalize(topic, payload), nil
}

// normalize maps the upstream payload onto domain.TopicData. Absent optional
// fields become empty strings; an absent title falls back to the requested topic.
func normalize(topic string, payload summaryResponse) *domain.TopicData {
	title := payload.Title
	if title == "" {
		title = topic
	}
	return &domain.TopicData{
		Title:       title,
		Extract:     payload.Extract,
		Description: payload.Description,
		URL:         payload.ContentURLs.Desktop.Page,
	}
}
