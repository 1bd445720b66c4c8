// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mathlog/mathlog-go/internal/model"
	"github.com/mathlog/mathlog-go/internal/store"
)

// CreateSubscriberRequest represents the request body for subscribing.
type CreateSubscriberRequest struct {
	Email string `json:"email"`
}

// SubscribedResponse is the success body for a new subscription.
type SubscribedResponse struct {
	Message string `json:"message"`
}

// CreateSubscriber handles POST /api/subscribers.
// A duplicate email returns a deliberately generic error so callers cannot
// probe which addresses are subscribed.
func (h *Handler) CreateSubscriber(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Email == "" {
		WriteFieldError(w, "Email is required", "email")
		return
	}

	email := model.NormalizeEmail(req.Email)
	if !model.IsValidEmail(email) {
		WriteFieldError(w, "Invalid email address", "email")
		return
	}

	if _, err := h.queries.CreateSubscriber(r.Context(), email); err != nil {
		if store.IsUniqueViolation(err) {
			WriteMessage(w, http.StatusBadRequest, "Unable to subscribe with this email")
			return
		}
		slog.Error("failed to create subscriber", "error", err)
		WriteInternalError(w, "Failed to subscribe")
		return
	}

	WriteJSON(w, http.StatusCreated, SubscribedResponse{Message: "Subscribed successfully"})
}
