// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the key-value storage backends the poll store persists into.

Every backend implements Backend, a whole-value replace store keyed by string:

	Get(ctx, key) (value, ok, err)
	Set(ctx, key, value) error
	Delete(ctx, key) error

# Backends

  - MemoryBackend: in-process map, used by tests and DATABASE_TYPE=memory
  - SQLBackend: a single kv table in SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq)
  - RedisBackend: plain string keys in Redis (go-redis)

Open selects a backend from the parsed configuration:

	backend, err := db.Open(ctx, cfg)

# Schema

The SQL backend uses a single table created by CreateSchema:

	CREATE TABLE IF NOT EXISTS kv (
	    key TEXT PRIMARY KEY,
	    value TEXT NOT NULL,
	    updated_at TIMESTAMP NOT NULL
	)

Writes are last-write-wins. There is no versioning and no merge.
*/
package db
