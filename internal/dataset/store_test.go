package dataset

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/pkg/contracts/domain"
)

type stubSource struct {
	matches []domain.Match
	err     error
	loads   int
}

func (s *stubSource) Load(ctx context.Context) ([]domain.Match, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

func (s *stubSource) Describe() string { return "stub" }

func sampleSource() *stubSource {
	return &stubSource{matches: []domain.Match{
		{League: "LeagueA", HomeTeam: "TeamX", AwayTeam: "TeamY", HomeGoals: 2, AwayGoals: 1},
		{League: "LeagueB", HomeTeam: "TeamP", AwayTeam: "TeamQ", HomeGoals: 0, AwayGoals: 0},
	}}
}

func TestStore_LoadOnce(t *testing.T) {
	src := sampleSource()
	store := NewStore(src, slog.Default())

	require.False(t, store.Ready())
	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Load(context.Background()))

	assert.Equal(t, 1, src.loads, "load must be memoized")
	assert.True(t, store.Ready())
	assert.Len(t, store.Matches(), 2)
}

func TestStore_Snapshot(t *testing.T) {
	store := NewStore(sampleSource(), slog.Default())
	require.NoError(t, store.Load(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, "stub", snap.Source)
	assert.Equal(t, 2, snap.Matches)
	assert.Equal(t, 2, snap.Leagues)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestStore_Reload(t *testing.T) {
	src := sampleSource()
	store := NewStore(src, slog.Default())
	require.NoError(t, store.Load(context.Background()))

	src.matches = src.matches[:1]
	snap, err := store.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, src.loads)
	assert.Equal(t, 1, snap.Matches)
	assert.Len(t, store.Matches(), 1)
}

func TestStore_ReloadFailureKeepsDataset(t *testing.T) {
	src := sampleSource()
	store := NewStore(src, slog.Default())
	require.NoError(t, store.Load(context.Background()))

	src.err = errors.New("source unavailable")
	_, err := store.Reload(context.Background())
	require.Error(t, err)

	assert.True(t, store.Ready())
	assert.Len(t, store.Matches(), 2, "failed reload must not clobber the cache")
}

func TestStore_LoadError(t *testing.T) {
	store := NewStore(&stubSource{err: errors.New("boom")}, slog.Default())

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.False(t, store.Ready())
	assert.Empty(t, store.Matches())
}
