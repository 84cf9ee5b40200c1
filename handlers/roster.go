// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/pollroster/metrics"
	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/roster"
)

// exportFilename is the download name offered for every CSV export
const exportFilename = "voters.csv"

type RosterHandler struct {
	dash *roster.Dashboard
}

func NewRosterHandler(dash *roster.Dashboard) *RosterHandler {
	return &RosterHandler{dash: dash}
}

// Surnames handles GET /roster/surnames?top=N
// top is clamped to 4..20; 0 or missing selects the default of 8
func (h *RosterHandler) Surnames(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "top must be an integer")
			return
		}
		n = parsed
	}
	n = roster.ClampTopN(n)

	top, others := h.dash.Aggregation().Top(n)
	middleware.JSONResponse(w, http.StatusOK, models.SurnamesResponse{
		Top:    n,
		Total:  len(h.dash.Records()),
		Ranked: top,
		Others: others,
	})
}

// Members handles GET /roster/surnames/{surname}
func (h *RosterHandler) Members(w http.ResponseWriter, r *http.Request) {
	surname := r.PathValue("surname")

	members := h.dash.Members(surname)
	if len(members) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Surname not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MembersResponse{
		Surname: surname,
		Count:   len(members),
		Records: members,
	})
}

// Summary handles GET /roster/summary
func (h *RosterHandler) Summary(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.dash.Summary())
}

// Search handles GET /roster/search?q=
func (h *RosterHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	results := h.dash.Search(q)
	if results == nil {
		results = []models.VoterRecord{}
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// ExportCSV handles GET /roster/export.csv
// surname= exports one bucket, ids= a comma-separated selection; neither
// exports the whole roster
func (h *RosterHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records := h.dash.Records()

	q := r.URL.Query()
	if surname := q.Get("surname"); surname != "" {
		records = h.dash.Members(surname)
	}
	if raw := q.Get("ids"); raw != "" {
		records = roster.SelectByID(records, splitIDs(raw))
	}

	h.writeCSV(w, records)
}

// ExportSelection handles POST /roster/export
func (h *RosterHandler) ExportSelection(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.VoterIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_ids is required")
		return
	}

	h.writeCSV(w, roster.SelectByID(h.dash.Records(), req.VoterIDs))
}

func (h *RosterHandler) writeCSV(w http.ResponseWriter, records []models.VoterRecord) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)

	if err := roster.WriteCSV(w, records, roster.ExportColumns); err != nil {
		slog.Error("failed to write csv export", "rows", len(records), "error", err)
		return
	}
	metrics.ExportRows.Add(float64(len(records)))
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
