// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/pollroster/db"
	"github.com/danielhkuo/pollroster/ident"
	"github.com/danielhkuo/pollroster/models"
)

// Storage keys
const (
	PollsKey     = "polls_v1"
	VotedListKey = "voted_polls_v1"
	ChoicePrefix = "voted_choice_"
	// VotersPrefix + poll id lists every device holding a marker for the poll.
	VotersPrefix = "voted_devices_"
)

var (
	ErrInvalidPoll    = errors.New("title and at least 2 options required")
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrAlreadyVoted   = errors.New("already voted on this device")
	ErrInvalidShare   = errors.New("invalid share data")
)

// Store reads and writes the poll list and device vote markers through a
// backend. Mutations from one process are serialized; writers in different
// processes sharing a backend race with last-write-wins.
type Store struct {
	backend db.Backend

	mu sync.Mutex // serializes read-modify-write

	subMu  sync.RWMutex
	subs   map[int]func(models.Change)
	nextID int
}

func NewStore(backend db.Backend) *Store {
	return &Store{
		backend: backend,
		subs:    make(map[int]func(models.Change)),
	}
}

// Load returns the persisted polls. A missing key yields an empty list; a
// read or parse failure is logged and also yields an empty list.
func (s *Store) Load(ctx context.Context) []models.Poll {
	raw, ok, err := s.backend.Get(ctx, PollsKey)
	if err != nil {
		slog.Error("failed to read polls", "error", err)
		return []models.Poll{}
	}
	if !ok || raw == "" {
		return []models.Poll{}
	}

	var polls []models.Poll
	if err := json.Unmarshal([]byte(raw), &polls); err != nil {
		slog.Error("failed to parse polls", "key", PollsKey, "error", err)
		return []models.Poll{}
	}
	if polls == nil {
		polls = []models.Poll{}
	}
	for i := range polls {
		if polls[i].Options == nil {
			polls[i].Options = []models.Option{}
		}
	}
	return polls
}

// Save persists the full list and notifies subscribers.
func (s *Store) Save(ctx context.Context, polls []models.Poll) error {
	if polls == nil {
		polls = []models.Poll{}
	}
	data, err := json.Marshal(polls)
	if err != nil {
		return fmt.Errorf("failed to encode polls: %w", err)
	}
	if err := s.backend.Set(ctx, PollsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save polls: %w", err)
	}
	s.notify(models.Change{Key: PollsKey, At: time.Now().UTC()})
	return nil
}

// Subscribe registers fn to be called after every save. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(models.Change)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(c models.Change) {
	s.subMu.RLock()
	fns := make([]func(models.Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

// NewPoll builds a poll with zeroed options. Labels are used as given.
func NewPoll(title string, labels []string) (models.Poll, error) {
	pollID, err := ident.GenerateID(ident.PollPrefix)
	if err != nil {
		return models.Poll{}, err
	}

	options := make([]models.Option, 0, len(labels))
	for _, label := range labels {
		optionID, err := ident.GenerateID(ident.OptionPrefix)
		if err != nil {
			return models.Poll{}, err
		}
		options = append(options, models.Option{ID: optionID, Label: label})
	}

	return models.Poll{
		ID:        pollID,
		Title:     title,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Options:   options,
	}, nil
}

// Create validates the input, prepends a new poll and saves.
// Title and labels are trimmed; empty labels are dropped.
func (s *Store) Create(ctx context.Context, title string, labels []string) (models.Poll, error) {
	title = strings.TrimSpace(title)
	cleaned := make([]string, 0, len(labels))
	for _, label := range labels {
		if label = strings.TrimSpace(label); label != "" {
			cleaned = append(cleaned, label)
		}
	}
	if title == "" || len(cleaned) < 2 {
		return models.Poll{}, ErrInvalidPoll
	}

	poll, err := NewPoll(title, cleaned)
	if err != nil {
		return models.Poll{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	polls := s.Load(ctx)
	polls = append([]models.Poll{poll}, polls...)
	if err := s.Save(ctx, polls); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))
	return poll, nil
}

// Get returns one poll by id.
func (s *Store) Get(ctx context.Context, pollID string) (models.Poll, error) {
	polls := s.Load(ctx)
	if i := indexOf(polls, pollID); i >= 0 {
		return polls[i], nil
	}
	return models.Poll{}, ErrPollNotFound
}

func indexOf(polls []models.Poll, pollID string) int {
	for i, p := range polls {
		if p.ID == pollID {
			return i
		}
	}
	return -1
}

func optionIndex(poll models.Poll, optionID string) int {
	for i, o := range poll.Options {
		if o.ID == optionID {
			return i
		}
	}
	return -1
}
