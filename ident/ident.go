// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefixes for generated identifiers
const (
	PollPrefix   = "poll-"
	OptionPrefix = "opt-"
)

// now is replaced in tests
var now = time.Now

// GenerateID returns prefix + base36 millisecond timestamp + 6 random base36 chars.
// IDs sort roughly by creation time.
func GenerateID(prefix string) (string, error) {
	suffix, err := randomBase36(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return prefix + strconv.FormatInt(now().UnixMilli(), 36) + suffix, nil
}

// NewDeviceID issues an identifier to a client that did not send one.
func NewDeviceID() string {
	return uuid.NewString()
}

// CanonicalDeviceID parses id as a UUID and returns its lower-case hyphenated
// form, so every spelling of one UUID maps to the same device.
func CanonicalDeviceID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func randomBase36(n int) (string, error) {
	const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(n)
	for _, c := range b {
		sb.WriteByte(base36Chars[int(c)%len(base36Chars)])
	}
	return sb.String(), nil
}
