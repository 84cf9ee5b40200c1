// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnvFile seeds the environment from a .env file, then ParseFlags
returns a Config struct with all settings:

	_ = cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: memory, sqlite, postgres or redis (default: sqlite)
  - DatabaseURL: file path, DSN or redis:// URL (required unless memory)
  - PublicOrigin: origin for share links (default: http://localhost:<port>)
  - RosterPath: voter roster file (optional)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	PUBLIC_ORIGIN → -origin
	ROSTER_PATH   → -roster

CLI flags take precedence over environment variables, and the process
environment takes precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - DATABASE_TYPE is not a known backend
  - DATABASE_URL is missing for a persistent backend
*/
package cliparse
