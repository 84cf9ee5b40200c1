// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
)

// AdminHandler exposes the override operations under /admin. The path is a
// UI convenience and grants nothing; deploy behind real access control if
// the overrides must be restricted.
type AdminHandler struct {
	store *polls.Store
}

func NewAdminHandler(store *polls.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ListPolls handles GET /admin/polls
// Returns full poll records including option ids
func (h *AdminHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Load(r.Context()))
}

// SetVotes handles PUT /admin/polls/{id}/options/{optionID}/votes
func (h *AdminHandler) SetVotes(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	optionID := r.PathValue("optionID")

	var req models.SetVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.AdminSetVotes(r.Context(), pollID, optionID, req.Votes); err != nil {
		writeStoreError(w, err, "Failed to set votes")
		return
	}

	h.writePoll(w, r, pollID)
}

// ResetVotes handles POST /admin/polls/{id}/reset
// Zeroes counts and clears the vote marker of every device that voted
func (h *AdminHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	if err := h.store.AdminResetVotes(r.Context(), pollID); err != nil {
		writeStoreError(w, err, "Failed to reset votes")
		return
	}

	h.writePoll(w, r, pollID)
}

// DeletePoll handles DELETE /admin/polls/{id}
func (h *AdminHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	if err := h.store.AdminDeletePoll(r.Context(), pollID); err != nil {
		writeStoreError(w, err, "Failed to delete poll")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPoll handles PUT /admin/polls/{id}
// Replaces title, options and counts; the path id wins over the body
func (h *AdminHandler) SetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	var poll models.Poll
	if err := middleware.ParseJSONBody(r, &poll); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	poll.ID = pollID
	if poll.Options == nil {
		poll.Options = []models.Option{}
	}

	if err := h.store.AdminSetPoll(r.Context(), poll); err != nil {
		writeStoreError(w, err, "Failed to save poll")
		return
	}

	h.writePoll(w, r, pollID)
}

func (h *AdminHandler) writePoll(w http.ResponseWriter, r *http.Request, pollID string) {
	poll, err := h.store.Get(r.Context(), pollID)
	if err != nil {
		writeStoreError(w, err, "Failed to load poll")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// writeStoreError maps poll store errors to HTTP responses
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, polls.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, polls.ErrOptionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
	case errors.Is(err, polls.ErrInvalidPoll):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
