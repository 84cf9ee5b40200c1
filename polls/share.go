// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/pollroster/models"
)

// ImportPath is the route share links point at.
const ImportPath = "/import"

// ShareURL returns <origin>/import?data=<percent-encoded poll JSON>.
func ShareURL(origin string, poll models.Poll) (string, error) {
	data, err := EncodeShared(poll)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(origin, "/") + ImportPath + "?data=" + data, nil
}

// EncodeShared serializes the poll and percent-encodes it with the
// encodeURIComponent character set, so the result is safe in a query value.
func EncodeShared(poll models.Poll) (string, error) {
	if poll.Options == nil {
		poll.Options = []models.Option{}
	}
	raw, err := json.Marshal(poll)
	if err != nil {
		return "", fmt.Errorf("failed to encode poll: %w", err)
	}
	return escapeComponent(string(raw)), nil
}

// DecodeShared reverses EncodeShared. The payload must carry an id, decode
// to valid UTF-8 and give createdAt as an RFC 3339 string.
func DecodeShared(encoded string) (models.Poll, error) {
	raw, err := url.PathUnescape(encoded)
	if err != nil {
		return models.Poll{}, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}
	if !utf8.ValidString(raw) {
		return models.Poll{}, fmt.Errorf("%w: not valid UTF-8", ErrInvalidShare)
	}

	var poll *models.Poll
	if err := json.Unmarshal([]byte(raw), &poll); err != nil {
		return models.Poll{}, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}
	if poll == nil || poll.ID == "" {
		return models.Poll{}, fmt.Errorf("%w: missing id", ErrInvalidShare)
	}
	if poll.Options == nil {
		poll.Options = []models.Option{}
	}
	return *poll, nil
}

// Import decodes a shared poll and stores it, overwriting any poll with the
// same id. Negative counts clamp to 0. On failure nothing is written.
func (s *Store) Import(ctx context.Context, encoded string) (models.Poll, error) {
	poll, err := DecodeShared(encoded)
	if err != nil {
		slog.Warn("poll import rejected", "error", err)
		return models.Poll{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	poll = clampVotes(poll)
	if err := s.upsert(ctx, poll); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll imported", "poll_id", poll.ID)
	return poll, nil
}

// escapeComponent leaves A-Z a-z 0-9 and -_.!~*'() unescaped and
// percent-encodes every other UTF-8 byte.
func escapeComponent(s string) string {
	const upperhex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
