// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollroster/metrics"
	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
)

type VotingHandler struct {
	store *polls.Store
}

func NewVotingHandler(store *polls.Store) *VotingHandler {
	return &VotingHandler{store: store}
}

// Vote handles POST /polls/{id}/votes
// One vote per poll per device (X-Device-UUID); the marker is advisory.
// A request without a device id is issued one in the response header.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	poll, err := h.store.Vote(r.Context(), middleware.EnsureDeviceID(w, r), pollID, req.OptionID)
	switch {
	case errors.Is(err, polls.ErrAlreadyVoted):
		metrics.VotesTotal.WithLabelValues("duplicate").Inc()
		middleware.ErrorResponse(w, http.StatusConflict, "You already voted on this device.")
		return
	case errors.Is(err, polls.ErrPollNotFound):
		metrics.VotesTotal.WithLabelValues("missing").Inc()
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll missing")
		return
	case errors.Is(err, polls.ErrOptionNotFound):
		metrics.VotesTotal.WithLabelValues("missing").Inc()
		middleware.ErrorResponse(w, http.StatusNotFound, "Option missing")
		return
	case err != nil:
		slog.Error("failed to record vote", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	metrics.VotesTotal.WithLabelValues("accepted").Inc()
	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Poll:     poll,
		Results:  polls.Results(poll),
		OptionID: req.OptionID,
	})
}
