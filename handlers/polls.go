// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollroster/cliparse"
	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
)

type PollHandler struct {
	store *polls.Store
	cfg   cliparse.Config
}

func NewPollHandler(store *polls.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: store, cfg: cfg}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	all := h.store.Load(r.Context())

	summaries := make([]models.PollSummary, 0, len(all))
	for _, p := range all {
		summaries = append(summaries, models.PollSummary{
			ID:         p.ID,
			Title:      p.Title,
			CreatedAt:  p.CreatedAt,
			CreatedAgo: humanize.Time(p.CreatedAt),
			TotalVotes: p.TotalVotes(),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.Create(r.Context(), req.Title, req.Options)
	if errors.Is(err, polls.ErrInvalidPoll) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title and at least 2 options required")
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// GetPoll handles GET /polls/{id}
// Includes the calling device's recorded choice, if any
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.store.Get(r.Context(), pollID)
	if errors.Is(err, polls.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	resp := models.PollDetailResponse{
		Poll:    poll,
		Results: polls.Results(poll),
	}
	device := middleware.DeviceID(r)
	if h.store.HasVoted(r.Context(), device, pollID) {
		if choice, ok := h.store.DeviceChoice(r.Context(), device, pollID); ok {
			resp.DeviceChoice = &choice
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SharePoll handles GET /polls/{id}/share
func (h *PollHandler) SharePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	poll, err := h.store.Get(r.Context(), pollID)
	if errors.Is(err, polls.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	shareURL, err := polls.ShareURL(h.cfg.PublicOrigin, poll)
	if err != nil {
		slog.Error("failed to build share link", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{ShareURL: shareURL})
}
