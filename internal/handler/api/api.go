// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides REST API handlers for MathLog.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mathlog/mathlog-go/internal/cache"
	"github.com/mathlog/mathlog-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db        *sql.DB
	queries   *store.Queries
	listCache *cache.TypedCache[[]PostResponse]
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB) *Handler {
	return &Handler{
		db:      db,
		queries: store.New(db),
	}
}

// SetCache enables response caching for post listings. Cached entries are
// invalidated when a post is created.
func (h *Handler) SetCache(c cache.Cacher, ttl time.Duration) {
	h.listCache = cache.NewTypedCache[[]PostResponse](c, ttl)
}

// Routes returns a router with all API endpoints registered.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/posts", h.ListPosts)
	r.Get("/posts/slug/{slug}", h.GetPostBySlug)
	r.Get("/posts/{id}", h.GetPost)
	r.Post("/posts", h.CreatePost)
	r.Post("/subscribers", h.CreateSubscriber)

	return r
}

// ErrorResponse is the API error body for non-validation failures.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the API error body for validation failures.
// Field names the offending request field.
type ValidationErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteMessage writes a {message} JSON error response.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message})
}

// WriteFieldError writes a 400 {message, field} validation error response.
func WriteFieldError(w http.ResponseWriter, message, field string) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: message,
		Field:   field,
	})
}

// WriteNotFound writes a 404 {message} response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 {message} response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusInternalServerError, message)
}
