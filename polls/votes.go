// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/danielhkuo/pollroster/models"
)

// Device markers are advisory. An empty device id uses the bare keys;
// any other id scopes them under "device:<id>:".
func votedListKey(device string) string {
	return devicePrefix(device) + VotedListKey
}

func choiceKey(device, pollID string) string {
	return devicePrefix(device) + ChoicePrefix + pollID
}

func devicePrefix(device string) string {
	if device == "" {
		return ""
	}
	return "device:" + device + ":"
}

func votersKey(pollID string) string {
	return VotersPrefix + pollID
}

// readList decodes a JSON string list. Unreadable values read as empty.
func (s *Store) readList(ctx context.Context, key string) ([]string, error) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.Warn("ignoring unreadable list", "key", key, "error", err)
		return []string{}, nil
	}
	return list, nil
}

func (s *Store) writeList(ctx context.Context, key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, key, string(data))
}

func (s *Store) votedList(ctx context.Context, device string) ([]string, error) {
	return s.readList(ctx, votedListKey(device))
}

// HasVoted reports whether the device has a vote marker for the poll.
func (s *Store) HasVoted(ctx context.Context, device, pollID string) bool {
	list, err := s.votedList(ctx, device)
	if err != nil {
		slog.Error("failed to read voted list", "device", device, "error", err)
		return false
	}
	return slices.Contains(list, pollID)
}

// DeviceChoice returns the option the device voted for, if any.
func (s *Store) DeviceChoice(ctx context.Context, device, pollID string) (string, bool) {
	v, ok, err := s.backend.Get(ctx, choiceKey(device, pollID))
	if err != nil {
		slog.Error("failed to read device choice", "device", device, "poll_id", pollID, "error", err)
		return "", false
	}
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MarkVoted records the device's choice, adds the poll to its voted list
// and the device to the poll's voter list.
func (s *Store) MarkVoted(ctx context.Context, device, pollID, optionID string) error {
	list, err := s.votedList(ctx, device)
	if err != nil {
		return fmt.Errorf("failed to read voted list: %w", err)
	}
	voters, err := s.readList(ctx, votersKey(pollID))
	if err != nil {
		return fmt.Errorf("failed to read voter list: %w", err)
	}
	if err := s.backend.Set(ctx, choiceKey(device, pollID), optionID); err != nil {
		return fmt.Errorf("failed to record choice: %w", err)
	}
	if !slices.Contains(voters, device) {
		if err := s.writeList(ctx, votersKey(pollID), append(voters, device)); err != nil {
			return fmt.Errorf("failed to record voter: %w", err)
		}
	}
	if slices.Contains(list, pollID) {
		return nil
	}
	if err := s.writeList(ctx, votedListKey(device), append(list, pollID)); err != nil {
		return fmt.Errorf("failed to record vote marker: %w", err)
	}
	return nil
}

func (s *Store) clearVoted(ctx context.Context, device, pollID string) error {
	list, err := s.votedList(ctx, device)
	if err != nil {
		return err
	}
	if slices.Contains(list, pollID) {
		list = slices.DeleteFunc(list, func(id string) bool { return id == pollID })
		if err := s.writeList(ctx, votedListKey(device), list); err != nil {
			return err
		}
	}
	return s.backend.Delete(ctx, choiceKey(device, pollID))
}

// clearAllVoted removes the marker of every device that voted on the poll.
// The bare device is always cleared, covering markers written before voter
// lists existed.
func (s *Store) clearAllVoted(ctx context.Context, pollID string) error {
	voters, err := s.readList(ctx, votersKey(pollID))
	if err != nil {
		return err
	}
	if !slices.Contains(voters, "") {
		voters = append(voters, "")
	}
	var errs []error
	for _, device := range voters {
		if err := s.clearVoted(ctx, device, pollID); err != nil {
			errs = append(errs, fmt.Errorf("device %q: %w", device, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return s.backend.Delete(ctx, votersKey(pollID))
}

// Vote adds one vote for optionID unless the device already voted on the poll.
// Rejected votes leave every counter untouched.
func (s *Store) Vote(ctx context.Context, device, pollID, optionID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.HasVoted(ctx, device, pollID) {
		return models.Poll{}, ErrAlreadyVoted
	}

	polls := s.Load(ctx)
	pi := indexOf(polls, pollID)
	if pi == -1 {
		return models.Poll{}, ErrPollNotFound
	}
	oi := optionIndex(polls[pi], optionID)
	if oi == -1 {
		return models.Poll{}, ErrOptionNotFound
	}

	polls[pi].Options[oi].Votes++
	if err := s.Save(ctx, polls); err != nil {
		return models.Poll{}, err
	}
	if err := s.MarkVoted(ctx, device, pollID, optionID); err != nil {
		// the vote is counted; the device can vote again until a marker is written
		slog.Error("failed to mark device vote", "poll_id", pollID, "error", err)
	}

	slog.Info("vote recorded", "poll_id", pollID, "option_id", optionID)
	return polls[pi], nil
}
