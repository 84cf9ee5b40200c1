// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/danielhkuo/pollroster/cliparse"
)

func openSQLite(t *testing.T) *SQLBackend {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// every new connection to :memory: is a fresh database
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return NewSQLBackend(conn)
}

func backendsUnderTest(t *testing.T) map[string]Backend {
	backends := map[string]Backend{
		"memory": NewMemoryBackend(),
		"sqlite": openSQLite(t),
	}
	if url := os.Getenv("TEST_REDIS_URL"); url != "" {
		rb, err := NewRedisBackend(context.Background(), url)
		if err != nil {
			t.Fatalf("Failed to connect to redis: %v", err)
		}
		backends["redis"] = rb
	}
	return backends
}

func TestBackend_GetSetDelete(t *testing.T) {
	ctx := context.Background()

	for name, b := range backendsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer b.Close()

			if _, ok, err := b.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("Expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := b.Set(ctx, "polls_v1", `[]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			v, ok, err := b.Get(ctx, "polls_v1")
			if err != nil || !ok || v != `[]` {
				t.Fatalf("Expected '[]', got %q ok=%v err=%v", v, ok, err)
			}

			// last write wins
			if err := b.Set(ctx, "polls_v1", `[{"id":"p1"}]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			v, _, _ = b.Get(ctx, "polls_v1")
			if v != `[{"id":"p1"}]` {
				t.Errorf("Expected overwritten value, got %q", v)
			}

			if err := b.Delete(ctx, "polls_v1"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, ok, _ := b.Get(ctx, "polls_v1"); ok {
				t.Error("Expected key to be deleted")
			}

			// deleting a missing key is not an error
			if err := b.Delete(ctx, "polls_v1"); err != nil {
				t.Errorf("Expected no error deleting missing key, got %v", err)
			}
		})
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	b := openSQLite(t)
	defer b.Close()

	if err := CreateSchema(b.db); err != nil {
		t.Errorf("Second CreateSchema failed: %v", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, err := Open(ctx, cliparse.Config{DatabaseType: TypeMemory})
	if err != nil {
		t.Fatalf("Open memory failed: %v", err)
	}
	if _, ok := b.(*MemoryBackend); !ok {
		t.Errorf("Expected *MemoryBackend, got %T", b)
	}

	b, err = Open(ctx, cliparse.Config{DatabaseType: TypeSQLite, DatabaseURL: "file::memory:"})
	if err != nil {
		t.Fatalf("Open sqlite failed: %v", err)
	}
	defer b.Close()
	if _, ok := b.(*SQLBackend); !ok {
		t.Errorf("Expected *SQLBackend, got %T", b)
	}

	_, err = Open(ctx, cliparse.Config{DatabaseType: "mongo"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}
