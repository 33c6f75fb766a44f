package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"matchday/pkg/contracts/domain"
	"matchday/pkg/contracts/events"
)

// Store holds the in-memory dataset for the lifetime of the process. The
// first Load reads the source; afterwards every request is served from the
// cached slice. Reload swaps the whole dataset atomically, so readers never
// observe a partial load.
type Store struct {
	source Source
	logger *slog.Logger

	mu       sync.RWMutex
	matches  []domain.Match
	snapshot events.DatasetSnapshot
	loaded   bool
}

// NewStore creates a dataset store backed by the given source.
func NewStore(source Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		source: source,
		logger: logger.With(slog.String("component", "dataset_store")),
	}
}

// Load reads the dataset if it has not been loaded yet. Subsequent calls
// are no-ops; use Reload to re-read the source.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := s.Reload(ctx)
	return err
}

// Reload re-reads the source and replaces the cached dataset. The previous
// dataset stays in place when the load fails.
func (s *Store) Reload(ctx context.Context) (events.DatasetSnapshot, error) {
	matches, err := s.source.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed",
			slog.String("source", s.source.Describe()),
			slog.String("error", err.Error()))
		return events.DatasetSnapshot{}, fmt.Errorf("load dataset from %s: %w", s.source.Describe(), err)
	}

	snapshot := buildSnapshot(s.source.Describe(), matches)

	s.mu.Lock()
	s.matches = matches
	s.snapshot = snapshot
	s.loaded = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "dataset loaded",
		slog.String("source", snapshot.Source),
		slog.Int("matches", snapshot.Matches),
		slog.Int("leagues", snapshot.Leagues))

	return snapshot, nil
}

// Matches returns the cached dataset. Callers must treat the slice as
// read-only.
func (s *Store) Matches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches
}

// Snapshot returns the metadata of the currently loaded dataset.
func (s *Store) Snapshot() events.DatasetSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Ready reports whether an initial load has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func buildSnapshot(source string, matches []domain.Match) events.DatasetSnapshot {
	leagues := make(map[string]struct{})
	var earliest, latest time.Time
	for _, m := range matches {
		leagues[m.League] = struct{}{}
		if earliest.IsZero() || m.Date.Before(earliest) {
			earliest = m.Date
		}
		if latest.IsZero() || m.Date.After(latest) {
			latest = m.Date
		}
	}
	return events.DatasetSnapshot{
		Source:     source,
		Matches:    len(matches),
		Leagues:    len(leagues),
		EarliestAt: earliest,
		LatestAt:   latest,
		LoadedAt:   time.Now().UTC(),
	}
}
