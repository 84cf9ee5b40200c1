// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pollroster API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, dash, cfg)

Every API route is wrapped with request logging and with Prometheus
metrics labelled by its pattern.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Polls:

	GET  /polls                - List polls, newest first
	POST /polls                - Create poll
	GET  /polls/{id}           - Poll, results and device choice
	GET  /polls/{id}/share     - Share link
	POST /polls/{id}/votes     - Vote once per device
	GET  /import?data=...      - Import a share link (303)
	GET  /events               - Server-Sent Events on every save

Overrides:

	GET    /admin/polls                                - Full poll records
	PUT    /admin/polls/{id}                           - Replace or insert a poll
	DELETE /admin/polls/{id}                           - Delete a poll
	POST   /admin/polls/{id}/reset                     - Zero counts, clear every device marker
	PUT    /admin/polls/{id}/options/{optionID}/votes  - Set one count

Roster:

	GET  /roster/surnames?top=N    - Ranked surnames
	GET  /roster/surnames/{surname} - Members of one surname
	GET  /roster/summary           - Gender and age-band counts
	GET  /roster/search?q=         - Name and voter id search
	GET  /roster/export.csv        - CSV export
	POST /roster/export            - CSV export of selected voter ids
*/
package router
