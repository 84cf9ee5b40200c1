// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollroster API server.

pollroster serves two small tools from one process: quick single-choice
polls that can be shared as self-contained links, and a read-only voter
roster dashboard that groups voters by inferred surname and exports CSV.

# Starting the Server

With no configuration the server stores polls in SQLite:

	DATABASE_URL=pollroster.db go run .

Or with flags:

	go run . -p 3318 -t memory -roster voters.json

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): memory, sqlite, postgres or redis (default: sqlite)
  - DATABASE_URL (-d): connection string or file path; unused for memory
  - PUBLIC_ORIGIN (-origin): origin used in share links
  - ROSTER_PATH (-roster): voter roster, .json or .csv

# Architecture

  - handlers: HTTP request handlers (polls, votes, admin, import, events, roster)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers, device header
  - polls: poll store, vote markers, overrides and share codec
  - roster: surname extraction, aggregation, CSV export and loading
  - db: key-value storage backends
  - metrics: Prometheus collectors
  - ident: poll, option and device identifiers
  - cliparse: Configuration parsing
  - blob: object storage sink for exports
  - cmd/rosterctl: offline roster reports and exports

See package documentation for each component.
*/
package main
