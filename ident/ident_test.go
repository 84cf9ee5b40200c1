// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	id, err := GenerateID(PollPrefix)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}

	// 1700000000000 in base36
	want := PollPrefix + "loyw3v28"
	if !strings.HasPrefix(id, want) {
		t.Errorf("Expected prefix %q, got %q", want, id)
	}
	if len(id) != len(want)+6 {
		t.Errorf("Expected 6 random chars, got %q", id)
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateID(OptionPrefix)
		if err != nil {
			t.Fatalf("GenerateID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestDeviceID(t *testing.T) {
	id := NewDeviceID()
	if got, ok := CanonicalDeviceID(id); !ok || got != id {
		t.Errorf("Expected generated device ID %q to be canonical, got %q", id, got)
	}

	for _, bad := range []string{"", "device-1", "../../etc"} {
		if _, ok := CanonicalDeviceID(bad); ok {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}

func TestCanonicalDeviceID_Spellings(t *testing.T) {
	const want = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	for _, spelling := range []string{
		want,
		strings.ToUpper(want),
		"{" + want + "}",
		"urn:uuid:" + want,
		strings.ReplaceAll(want, "-", ""),
	} {
		got, ok := CanonicalDeviceID(spelling)
		if !ok || got != want {
			t.Errorf("CanonicalDeviceID(%q) = %q, %v; want %q", spelling, got, ok, want)
		}
	}
}
