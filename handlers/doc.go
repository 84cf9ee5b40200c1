// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll and roster API.

# Handler Types

Each handler is a struct holding its store and config:

  - PollHandler: create, list, view and share polls
  - VotingHandler: one vote per poll per device
  - AdminHandler: vote overrides, reset, delete and full replace
  - ImportHandler: share-link import with redirect
  - EventsHandler: Server-Sent Events change stream
  - RosterHandler: surname rankings, search, summary and CSV export

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(store, cfg)

# Devices

Vote markers are scoped by the X-Device-UUID header. Any UUID spelling is
accepted and canonicalized. A vote without a valid header is issued a fresh
id in the X-Device-UUID response header, which the client sends back on
later requests.

# Voting Flow

	POST /polls/{id}/votes → Vote (201, or 409 when this device already voted)
	GET  /polls/{id}       → GetPoll (results plus this device's choice)

# Sharing

	GET /polls/{id}/share  → share_url pointing at PUBLIC_ORIGIN/import
	GET /import?data=...   → 303 to /polls/{id} or /?import=failed

An import overwrites any local poll with the same id.

# Roster

	GET  /roster/surnames?top=N   → ranked buckets plus "others" count
	GET  /roster/export.csv       → CSV of the whole roster, a surname or ids
	POST /roster/export           → CSV of an explicit voter_id selection
*/
package handlers
