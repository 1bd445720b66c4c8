// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package client provides a typed data-access layer over the MathLog REST
// API. Reads are cached per (endpoint, parameters) key, concurrent requests
// for the same key are coalesced, and an embedded fallback dataset is served
// when the live API is unreachable. Each result carries its source so
// consumers can tell live data from fallback data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mathlog/mathlog-go/internal/cache"
	"github.com/mathlog/mathlog-go/internal/handler/api"
)

// Source identifies where a result came from.
type Source string

const (
	// SourceLive marks data fetched from the API (possibly via cache).
	SourceLive Source = "live"

	// SourceFallback marks data served from the embedded offline dataset.
	SourceFallback Source = "fallback"
)

// Cache key prefixes.
const (
	listKeyPrefix = "posts:list:"
	idKeyPrefix   = "posts:id:"
	slugKeyPrefix = "posts:slug:"
)

// ListFilters narrows a post listing. Empty fields are ignored.
type ListFilters struct {
	Topic      string
	Difficulty string
	Search     string
}

// PostsResult is a post listing together with its source.
type PostsResult struct {
	Posts  []api.PostResponse `json:"data"`
	Source Source             `json:"source"`
}

// PostResult is a single post together with its source.
type PostResult struct {
	Post   *api.PostResponse `json:"data"`
	Source Source            `json:"source"`
}

// APIError is an error response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api: %d %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a 404 API response.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	// HTTPClient is the HTTP client used for requests. Defaults to a
	// client with a 10 second timeout.
	HTTPClient *http.Client

	// Cache is the backing cache for read results. Defaults to an
	// in-memory cache.
	Cache cache.Cacher

	// CacheTTL is how long read results stay cached. Defaults to 5 minutes.
	CacheTTL time.Duration
}

// Client is a MathLog API client with caching and offline fallback.
type Client struct {
	baseURL string
	http    *http.Client
	backing cache.Cacher
	lists   *cache.TypedCache[[]api.PostResponse]
	posts   *cache.TypedCache[api.PostResponse]
	group   singleflight.Group
}

// New creates a client for the API at baseURL with default options.
func New(baseURL string) *Client {
	return NewWithOptions(baseURL, Options{})
}

// NewWithOptions creates a client with explicit options.
func NewWithOptions(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	backing := opts.Cache
	if backing == nil {
		backing = cache.NewSimpleMemoryCache(5 * time.Minute)
	}

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		backing: backing,
		lists:   cache.NewTypedCache[[]api.PostResponse](backing, ttl),
		posts:   cache.NewTypedCache[api.PostResponse](backing, ttl),
	}
}

// Close releases the backing cache.
func (c *Client) Close() error {
	return c.backing.Close()
}

// listKey builds a deterministic cache key from list filters.
func listKey(filters ListFilters) string {
	return listKeyPrefix + listQuery(filters)
}

// ListPosts returns posts matching the filters. Results are served from
// cache when fresh; otherwise one fetch is made per key regardless of how
// many callers ask concurrently. When the API is unreachable the embedded
// fallback dataset is filtered locally and returned with SourceFallback.
func (c *Client) ListPosts(ctx context.Context, filters ListFilters) (*PostsResult, error) {
	key := listKey(filters)

	if posts, ok := c.lists.Get(ctx, key); ok {
		return &PostsResult{Posts: *posts, Source: SourceLive}, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		var posts []api.PostResponse
		if err := c.getJSON(ctx, "/api/posts?"+listQuery(filters), &posts); err != nil {
			if _, isAPIErr := err.(*APIError); isAPIErr {
				return nil, err
			}
			slog.Warn("post list fetch failed, serving fallback", "error", err)
			return &PostsResult{Posts: filterFallback(filters), Source: SourceFallback}, nil
		}

		_ = c.lists.Set(ctx, key, &posts)
		return &PostsResult{Posts: posts, Source: SourceLive}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*PostsResult), nil
}

// GetPost returns a single post by ID. A 404 from the API propagates as an
// APIError; only transport failures fall back to the embedded dataset.
func (c *Client) GetPost(ctx context.Context, id int64) (*PostResult, error) {
	key := idKeyPrefix + strconv.FormatInt(id, 10)

	if post, ok := c.posts.Get(ctx, key); ok {
		return &PostResult{Post: post, Source: SourceLive}, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		var post api.PostResponse
		if err := c.getJSON(ctx, fmt.Sprintf("/api/posts/%d", id), &post); err != nil {
			if _, isAPIErr := err.(*APIError); isAPIErr {
				return nil, err
			}
			if fb, ok := fallbackByID(id); ok {
				slog.Warn("post fetch failed, serving fallback", "id", id, "error", err)
				return &PostResult{Post: fb, Source: SourceFallback}, nil
			}
			return nil, err
		}

		_ = c.posts.Set(ctx, key, &post)
		return &PostResult{Post: &post, Source: SourceLive}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*PostResult), nil
}

// GetPostBySlug returns a single post by slug with the same semantics as
// GetPost.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*PostResult, error) {
	key := slugKeyPrefix + slug

	if post, ok := c.posts.Get(ctx, key); ok {
		return &PostResult{Post: post, Source: SourceLive}, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		var post api.PostResponse
		if err := c.getJSON(ctx, "/api/posts/slug/"+url.PathEscape(slug), &post); err != nil {
			if _, isAPIErr := err.(*APIError); isAPIErr {
				return nil, err
			}
			if fb, ok := fallbackBySlug(slug); ok {
				slog.Warn("post fetch failed, serving fallback", "slug", slug, "error", err)
				return &PostResult{Post: fb, Source: SourceFallback}, nil
			}
			return nil, err
		}

		_ = c.posts.Set(ctx, key, &post)
		return &PostResult{Post: &post, Source: SourceLive}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*PostResult), nil
}

// CreatePost creates a post and returns the stored version. On success all
// cached list results are invalidated so subsequent listings refetch.
func (c *Client) CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.PostResponse, error) {
	var post api.PostResponse
	if err := c.postJSON(ctx, "/api/posts", req, &post); err != nil {
		return nil, err
	}

	_ = c.lists.DeleteByPrefix(ctx, listKeyPrefix)

	return &post, nil
}

// CreateSubscriber subscribes an email address to the newsletter. No cached
// read depends on subscribers, so nothing is invalidated.
func (c *Client) CreateSubscriber(ctx context.Context, email string) error {
	var resp api.SubscribedResponse
	return c.postJSON(ctx, "/api/subscribers", api.CreateSubscriberRequest{Email: email}, &resp)
}

// listQuery encodes list filters as a query string.
func listQuery(filters ListFilters) string {
	v := url.Values{}
	if filters.Topic != "" {
		v.Set("topic", filters.Topic)
	}
	if filters.Difficulty != "" {
		v.Set("difficulty", filters.Difficulty)
	}
	if filters.Search != "" {
		v.Set("search", filters.Search)
	}
	return v.Encode()
}

// getJSON performs a GET request and decodes the response body into out.
// Non-2xx responses with a JSON error body become *APIError; transport
// failures return the underlying error.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// postJSON performs a POST request with a JSON body and decodes the
// response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// decodeResponse turns a response into out or an error. 5xx responses are
// reported as plain errors so reads can fall back; 4xx responses become
// *APIError with the server's message and field.
func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode >= 500 {
		return fmt.Errorf("server error: %s", resp.Status)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body api.ValidationErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Message
			apiErr.Field = body.Field
		}
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
