// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/mathlog/mathlog-go/internal/handler/api"
)

//go:embed fallback.json
var fallbackFS embed.FS

var (
	fallbackOnce  sync.Once
	fallbackPosts []api.PostResponse
)

// FallbackPosts returns the embedded offline dataset. Served when the live
// API cannot be reached so readers still see content.
func FallbackPosts() []api.PostResponse {
	fallbackOnce.Do(func() {
		data, err := fallbackFS.ReadFile("fallback.json")
		if err != nil {
			panic("client: missing embedded fallback dataset: " + err.Error())
		}
		if err := json.Unmarshal(data, &fallbackPosts); err != nil {
			panic("client: malformed embedded fallback dataset: " + err.Error())
		}
	})

	// Return a copy so callers cannot mutate the shared dataset
	posts := make([]api.PostResponse, len(fallbackPosts))
	copy(posts, fallbackPosts)
	return posts
}

// filterFallback applies list filters to the fallback dataset with the same
// semantics as the live API: all provided filters must match, search is a
// case-insensitive title substring match.
func filterFallback(filters ListFilters) []api.PostResponse {
	result := make([]api.PostResponse, 0)
	for _, p := range FallbackPosts() {
		if filters.Topic != "" && p.Topic != filters.Topic {
			continue
		}
		if filters.Difficulty != "" && p.Difficulty != filters.Difficulty {
			continue
		}
		if filters.Search != "" &&
			!strings.Contains(strings.ToLower(p.Title), strings.ToLower(filters.Search)) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// fallbackByID looks up a fallback post by ID.
func fallbackByID(id int64) (*api.PostResponse, bool) {
	for _, p := range FallbackPosts() {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

// fallbackBySlug looks up a fallback post by slug.
func fallbackBySlug(slug string) (*api.PostResponse, bool) {
	for _, p := range FallbackPosts() {
		if p.Slug == slug {
			return &p, true
		}
	}
	return nil, false
}
