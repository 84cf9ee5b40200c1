// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/pollroster/metrics"
	"github.com/danielhkuo/pollroster/polls"
)

// Landing redirects after an import attempt
const (
	importMissingRedirect = "/?import=missing"
	importFailedRedirect  = "/?import=failed"
)

type ImportHandler struct {
	store *polls.Store
}

func NewImportHandler(store *polls.Store) *ImportHandler {
	return &ImportHandler{store: store}
}

// Import handles GET /import?data=...
// Success redirects to the poll; any failure redirects to the landing view
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, ok := rawQueryValue(r.URL.RawQuery, "data")
	if !ok || data == "" {
		metrics.ImportsTotal.WithLabelValues("missing").Inc()
		http.Redirect(w, r, importMissingRedirect, http.StatusSeeOther)
		return
	}

	poll, err := h.store.Import(r.Context(), data)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("failed").Inc()
		http.Redirect(w, r, importFailedRedirect, http.StatusSeeOther)
		return
	}

	metrics.ImportsTotal.WithLabelValues("imported").Inc()
	http.Redirect(w, r, "/polls/"+url.PathEscape(poll.ID), http.StatusSeeOther)
}

// rawQueryValue returns the still-encoded value of key so the share codec
// decodes it exactly once.
func rawQueryValue(rawQuery, key string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}
