// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollroster/cliparse"
	"github.com/danielhkuo/pollroster/handlers"
	"github.com/danielhkuo/pollroster/metrics"
	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/polls"
	"github.com/danielhkuo/pollroster/roster"
)

func NewRouter(store *polls.Store, dash *roster.Dashboard, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(pattern, h)))
	}

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(store, cfg)
	votingHandler := handlers.NewVotingHandler(store)
	adminHandler := handlers.NewAdminHandler(store)
	importHandler := handlers.NewImportHandler(store)
	eventsHandler := handlers.NewEventsHandler(store)
	rosterHandler := handlers.NewRosterHandler(dash)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Polls (public)
	handle("GET /polls", pollHandler.ListPolls)
	handle("POST /polls", pollHandler.CreatePoll)
	handle("GET /polls/{id}", pollHandler.GetPoll)
	handle("GET /polls/{id}/share", pollHandler.SharePoll)
	handle("POST /polls/{id}/votes", votingHandler.Vote)
	handle("GET "+polls.ImportPath, importHandler.Import)
	handle("GET /events", eventsHandler.Stream)

	// Overrides; no access control
	handle("GET /admin/polls", adminHandler.ListPolls)
	handle("PUT /admin/polls/{id}", adminHandler.SetPoll)
	handle("DELETE /admin/polls/{id}", adminHandler.DeletePoll)
	handle("POST /admin/polls/{id}/reset", adminHandler.ResetVotes)
	handle("PUT /admin/polls/{id}/options/{optionID}/votes", adminHandler.SetVotes)

	// Roster dashboard (read-only)
	handle("GET /roster/surnames", rosterHandler.Surnames)
	handle("GET /roster/surnames/{surname}", rosterHandler.Members)
	handle("GET /roster/summary", rosterHandler.Summary)
	handle("GET /roster/search", rosterHandler.Search)
	handle("GET /roster/export.csv", rosterHandler.ExportCSV)
	handle("POST /roster/export", rosterHandler.ExportSelection)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollroster API v1"))
	})

	return mux
}
