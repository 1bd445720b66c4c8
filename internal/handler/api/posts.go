// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mathlog/mathlog-go/internal/markdown"
	"github.com/mathlog/mathlog-go/internal/store"
	"github.com/mathlog/mathlog-go/internal/util"
)

// PostResponse represents a post in API responses.
type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	CoverUrl   *string   `json:"coverUrl"`
	ReadTime   int64     `json:"readTime"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatePostRequest represents the request body for creating a post.
type CreatePostRequest struct {
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Content    string  `json:"content"`
	Summary    string  `json:"summary"`
	CoverUrl   *string `json:"coverUrl"`
	ReadTime   int64   `json:"readTime"`
	Difficulty string  `json:"difficulty"`
	Topic      string  `json:"topic"`
	AuthorName string  `json:"authorName"`
	AuthorRole string  `json:"authorRole"`
}

// storePostToResponse converts a store.Post to PostResponse.
func storePostToResponse(p store.Post) PostResponse {
	resp := PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Content:    p.Content,
		Summary:    p.Summary,
		ReadTime:   p.ReadTime,
		Difficulty: p.Difficulty,
		Topic:      p.Topic,
		AuthorName: p.AuthorName,
		AuthorRole: p.AuthorRole,
		CreatedAt:  p.CreatedAt,
	}

	if p.CoverUrl.Valid {
		resp.CoverUrl = &p.CoverUrl.String
	}

	return resp
}

// renderContent replaces the post content with sanitized HTML when the
// request carries ?render=html.
func renderContent(w http.ResponseWriter, r *http.Request, resp *PostResponse) bool {
	if r.URL.Query().Get("render") != "html" {
		return true
	}

	html, err := markdown.Render(resp.Content)
	if err != nil {
		slog.Error("failed to render post content", "slug", resp.Slug, "error", err)
		WriteInternalError(w, "Failed to render post content")
		return false
	}
	resp.Content = html
	return true
}

// listCacheKeyPrefix namespaces cached post listings.
const listCacheKeyPrefix = "api:posts:list:"

// listCacheKey builds a deterministic cache key from the filter parameters.
func listCacheKey(params store.ListPostsParams) string {
	v := url.Values{}
	if params.Topic != "" {
		v.Set("topic", params.Topic)
	}
	if params.Difficulty != "" {
		v.Set("difficulty", params.Difficulty)
	}
	if params.Search != "" {
		v.Set("search", params.Search)
	}
	return listCacheKeyPrefix + v.Encode()
}

// ListPosts handles GET /api/posts.
// Supports optional topic, difficulty, and search query parameters; all
// provided filters must match.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := store.ListPostsParams{
		Topic:      q.Get("topic"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
	}

	if h.listCache != nil {
		if cached, ok := h.listCache.Get(r.Context(), listCacheKey(params)); ok {
			WriteJSON(w, http.StatusOK, *cached)
			return
		}
	}

	posts, err := h.queries.ListPosts(r.Context(), params)
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		WriteInternalError(w, "Failed to list posts")
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, storePostToResponse(p))
	}

	if h.listCache != nil {
		_ = h.listCache.Set(r.Context(), listCacheKey(params), &responses)
	}

	WriteJSON(w, http.StatusOK, responses)
}

// GetPost handles GET /api/posts/{id}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.queries.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Post not found")
		} else {
			slog.Error("failed to get post", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve post")
		}
		return
	}

	resp := storePostToResponse(post)
	if !renderContent(w, r, &resp) {
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GetPostBySlug handles GET /api/posts/slug/{slug}.
func (h *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteMessage(w, http.StatusBadRequest, "Slug is required")
		return
	}

	post, err := h.queries.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Post not found")
		} else {
			slog.Error("failed to get post by slug", "slug", slug, "error", err)
			WriteInternalError(w, "Failed to retrieve post")
		}
		return
	}

	resp := storePostToResponse(post)
	if !renderContent(w, r, &resp) {
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// CreatePost handles POST /api/posts.
// Validation mirrors the entity schema: the first violation is surfaced as
// 400 with the offending field.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if msg, field, ok := validateCreatePost(&req); !ok {
		WriteFieldError(w, msg, field)
		return
	}

	params := store.CreatePostParams{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Summary:    req.Summary,
		ReadTime:   req.ReadTime,
		Difficulty: req.Difficulty,
		Topic:      req.Topic,
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
	}
	if req.CoverUrl != nil && *req.CoverUrl != "" {
		params.CoverUrl = sql.NullString{String: *req.CoverUrl, Valid: true}
	}

	post, err := h.queries.CreatePost(r.Context(), params)
	if err != nil {
		if store.IsUniqueViolation(err) {
			WriteFieldError(w, "Slug already exists", "slug")
			return
		}
		slog.Error("failed to create post", "slug", req.Slug, "error", err)
		WriteInternalError(w, "Failed to create post")
		return
	}

	if h.listCache != nil {
		_ = h.listCache.DeleteByPrefix(r.Context(), listCacheKeyPrefix)
	}

	WriteJSON(w, http.StatusCreated, storePostToResponse(post))
}

// validateCreatePost checks required fields in schema order.
// Returns the first violation's message and field, or ok=true.
func validateCreatePost(req *CreatePostRequest) (msg, field string, ok bool) {
	switch {
	case req.Title == "":
		return "Title is required", "title", false
	case req.Slug == "":
		return "Slug is required", "slug", false
	case !util.IsValidSlug(req.Slug):
		return "Slug may only contain lowercase letters, numbers, and hyphens", "slug", false
	case req.Content == "":
		return "Content is required", "content", false
	case req.Summary == "":
		return "Summary is required", "summary", false
	case req.ReadTime <= 0:
		return "Read time must be a positive number", "readTime", false
	case req.Difficulty == "":
		return "Difficulty is required", "difficulty", false
	case req.Topic == "":
		return "Topic is required", "topic", false
	case req.AuthorName == "":
		return "Author name is required", "authorName", false
	case req.AuthorRole == "":
		return "Author role is required", "authorRole", false
	}
	return "", "", true
}
