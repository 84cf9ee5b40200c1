// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/pollroster/models"
)

// Admin overrides bypass the one-vote-per-device rule. They carry no access
// control of their own.

// AdminSetVotes overwrites one option's counter. Negative values clamp to 0.
func (s *Store) AdminSetVotes(ctx context.Context, pollID, optionID string, votes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls := s.Load(ctx)
	pi := indexOf(polls, pollID)
	if pi == -1 {
		return ErrPollNotFound
	}
	oi := optionIndex(polls[pi], optionID)
	if oi == -1 {
		return ErrOptionNotFound
	}
	polls[pi].Options[oi].Votes = max(0, votes)

	if err := s.Save(ctx, polls); err != nil {
		return err
	}
	slog.Info("admin set votes", "poll_id", pollID, "option_id", optionID, "votes", polls[pi].Options[oi].Votes)
	return nil
}

// AdminResetVotes zeroes every counter of the poll and clears the marker of
// every device that voted on it, so each may vote again.
func (s *Store) AdminResetVotes(ctx context.Context, pollID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls := s.Load(ctx)
	pi := indexOf(polls, pollID)
	if pi == -1 {
		return ErrPollNotFound
	}
	for i := range polls[pi].Options {
		polls[pi].Options[i].Votes = 0
	}
	if err := s.Save(ctx, polls); err != nil {
		return err
	}
	if err := s.clearAllVoted(ctx, pollID); err != nil {
		slog.Warn("failed to clear device vote markers", "poll_id", pollID, "error", err)
	}

	slog.Info("admin reset votes", "poll_id", pollID)
	return nil
}

// AdminDeletePoll removes the poll. Deleting an unknown id is not an error.
func (s *Store) AdminDeletePoll(ctx context.Context, pollID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls := s.Load(ctx)
	remaining := make([]models.Poll, 0, len(polls))
	for _, p := range polls {
		if p.ID != pollID {
			remaining = append(remaining, p)
		}
	}
	if err := s.Save(ctx, remaining); err != nil {
		return err
	}

	slog.Info("admin deleted poll", "poll_id", pollID)
	return nil
}

// AdminSetPoll replaces the poll with the same id, or prepends it.
func (s *Store) AdminSetPoll(ctx context.Context, poll models.Poll) error {
	if poll.ID == "" {
		return ErrInvalidPoll
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.upsert(ctx, clampVotes(poll)); err != nil {
		return err
	}
	slog.Info("admin saved poll", "poll_id", poll.ID)
	return nil
}

// upsert must be called with s.mu held.
func (s *Store) upsert(ctx context.Context, poll models.Poll) error {
	polls := s.Load(ctx)
	if i := indexOf(polls, poll.ID); i >= 0 {
		polls[i] = poll
	} else {
		polls = append([]models.Poll{poll}, polls...)
	}
	return s.Save(ctx, polls)
}

func clampVotes(poll models.Poll) models.Poll {
	options := make([]models.Option, len(poll.Options))
	for i, o := range poll.Options {
		o.Votes = max(0, o.Votes)
		options[i] = o
	}
	poll.Options = options
	return poll
}
