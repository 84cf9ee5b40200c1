// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
)

// keepAliveInterval bounds how long an idle stream stays silent
const keepAliveInterval = 25 * time.Second

type EventsHandler struct {
	store *polls.Store
}

func NewEventsHandler(store *polls.Store) *EventsHandler {
	return &EventsHandler{store: store}
}

// Stream handles GET /events
// Sends a Server-Sent Event after every store save so open views can reload.
// Slow clients miss events rather than block writers.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	changes := make(chan models.Change, 16)
	cancel := h.store.Subscribe(func(c models.Change) {
		select {
		case changes <- c:
		default:
		}
	})
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		slog.Error("event stream not supported", "error", err)
		return
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": keep-alive\n\n")
		case c := <-changes:
			data, err := json.Marshal(c)
			if err != nil {
				slog.Error("failed to encode change event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", data)
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
