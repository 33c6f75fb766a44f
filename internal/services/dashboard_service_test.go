package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "matchday/internal/errors"
	api "matchday/pkg/contracts/api/v1"
	"matchday/pkg/contracts/domain"
	"matchday/pkg/contracts/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// stubStore is an in-memory DatasetStore with scriptable reload behavior.
type stubStore struct {
	matches   []domain.Match
	ready     bool
	reloadErr error
	reloads   int
}

func (s *stubStore) Load(ctx context.Context) error { return nil }

func (s *stubStore) Reload(ctx context.Context) (events.DatasetSnapshot, error) {
	s.reloads++
	if s.reloadErr != nil {
		return events.DatasetSnapshot{}, s.reloadErr
	}
	s.ready = true
	return events.DatasetSnapshot{Matches: len(s.matches), LoadedAt: time.Now()}, nil
}

func (s *stubStore) Matches() []domain.Match { return s.matches }

func (s *stubStore) Snapshot() events.DatasetSnapshot {
	return events.DatasetSnapshot{Matches: len(s.matches), LoadedAt: time.Now()}
}

func (s *stubStore) Ready() bool { return s.ready }

// stubHub records broadcast calls.
type stubHub struct {
	reloaded []events.DatasetSnapshot
	errors   []string
}

func (h *stubHub) BroadcastDatasetReloaded(snapshot events.DatasetSnapshot, traceID string) {
	h.reloaded = append(h.reloaded, snapshot)
}

func (h *stubHub) BroadcastDatasetError(message, traceID string) {
	h.errors = append(h.errors, message)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixture(league, home, away, date string, hg, ag, hf, af int) domain.Match {
	return domain.Match{
		League:    league,
		HomeTeam:  home,
		AwayTeam:  away,
		Date:      day(date),
		HomeGoals: hg,
		AwayGoals: ag,
		HomeFouls: hf,
		AwayFouls: af,
	}
}

func testMatches() []domain.Match {
	return []domain.Match{
		fixture("Premier", "TeamX", "TeamY", "2024-01-10", 2, 0, 3, 1),
		fixture("Premier", "TeamZ", "TeamX", "2024-01-20", 0, 0, 2, 1),
		fixture("Premier", "TeamY", "TeamZ", "2024-02-05", 1, 3, 4, 2),
		fixture("Serie A", "Milano", "Torino", "2024-01-15", 1, 1, 5, 5),
	}
}

func newTestService(matches []domain.Match) (*DashboardService, *stubStore, *stubHub) {
	store := &stubStore{matches: matches, ready: true}
	hub := &stubHub{}
	svc := NewDashboardService(store, hub, nil, testLogger())
	return svc, store, hub
}

func TestLeagues(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	leagues, err := svc.Leagues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Premier", "Serie A"}, leagues)
}

func TestLeagues_NotReady(t *testing.T) {
	svc, store, _ := newTestService(testMatches())
	store.ready = false

	_, err := svc.Leagues(context.Background())
	assert.ErrorIs(t, err, apierrors.ErrDatasetNotReady)
}

func TestTeams(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	teams, err := svc.Teams(context.Background(), "Premier")
	require.NoError(t, err)
	assert.Equal(t, []string{"TeamX", "TeamY", "TeamZ"}, teams)
}

func TestTeams_UnknownLeague(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	_, err := svc.Teams(context.Background(), "La Liga")
	assert.ErrorIs(t, err, apierrors.ErrLeagueNotFound)
}

func TestMatches_Filtering(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	tests := []struct {
		name      string
		req       api.MatchFilterRequest
		wantCount int
	}{
		{
			name:      "league only",
			req:       api.MatchFilterRequest{League: "Premier"},
			wantCount: 3,
		},
		{
			name:      "league and team",
			req:       api.MatchFilterRequest{League: "Premier", Team: "TeamX"},
			wantCount: 2,
		},
		{
			name: "date window",
			req: api.MatchFilterRequest{
				League:           "Premier",
				DateRangeRequest: api.DateRangeRequest{From: "2024-01-15", To: "2024-02-28"},
			},
			wantCount: 2,
		},
		{
			name:      "no filter returns everything",
			req:       api.MatchFilterRequest{},
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Matches(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Matches, tt.wantCount)
		})
	}
}

func TestMatches_BadDate(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	_, err := svc.Matches(context.Background(), api.MatchFilterRequest{
		DateRangeRequest: api.DateRangeRequest{From: "15-01-2024"},
	})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "VALIDATION_FAILED", apiErr.ErrorCode)
}

func TestMatches_InvertedRange(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	_, err := svc.Matches(context.Background(), api.MatchFilterRequest{
		DateRangeRequest: api.DateRangeRequest{From: "2024-02-01", To: "2024-01-01"},
	})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	summary, err := svc.Summary(context.Background(), api.TeamSummaryRequest{
		League: "Premier",
		Team:   "TeamX",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalMatches)
	assert.Equal(t, 1, summary.Wins)
	assert.Equal(t, 0, summary.Losses)
	assert.Equal(t, 1, summary.Draws)
	assert.Equal(t, 1, summary.CleanSheets)
	assert.Equal(t, 2, summary.TotalGoals)
	assert.InDelta(t, 1.0, summary.AvgGoalsPerMatch, 0.0001)
	assert.Equal(t, 4, summary.TotalFouls)
}

func TestSummary_UnknownTeam(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	_, err := svc.Summary(context.Background(), api.TeamSummaryRequest{Team: "Nowhere FC"})
	assert.ErrorIs(t, err, apierrors.ErrTeamNotFound)
}

func TestSummary_TeamOutsideLeague(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	// Milano plays in Serie A, not in Premier
	_, err := svc.Summary(context.Background(), api.TeamSummaryRequest{
		League: "Premier",
		Team:   "Milano",
	})
	assert.ErrorIs(t, err, apierrors.ErrTeamNotFound)
}

func TestHeadToHead(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	resp, err := svc.HeadToHead(context.Background(), api.HeadToHeadRequest{
		Team1: "TeamX",
		Team2: "TeamY",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.HeadToHead.TotalMatches)
	assert.Equal(t, 1, resp.HeadToHead.Team1Wins)
	assert.Equal(t, 0, resp.HeadToHead.Team2Wins)
	assert.Equal(t, 0, resp.HeadToHead.Draws)
	assert.Len(t, resp.Matches, 1)
}

func TestTopScorers_DefaultLimit(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	resp, err := svc.TopScorers(context.Background(), api.TopScorersRequest{League: "Premier"})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Limit)
	require.NotEmpty(t, resp.Scorers)
	// TeamZ scored 3 away plus 0 at home
	assert.Equal(t, "TeamZ", resp.Scorers[0].Team)
	assert.Equal(t, 3, resp.Scorers[0].TotalGoals)
}

func TestDashboard_SingleTeam(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	resp, err := svc.Dashboard(context.Background(), api.DashboardRequest{
		League: "Premier",
		Team1:  "TeamX",
		Team2:  "None",
	})
	require.NoError(t, err)

	assert.Equal(t, "TeamX", resp.Team1.Summary.Team)
	assert.Equal(t, 2, resp.Team1.Summary.TotalMatches)
	assert.Nil(t, resp.Team2)
	assert.Nil(t, resp.HeadToHead)
	assert.NotEmpty(t, resp.TopScorers.Scorers)
}

func TestDashboard_TwoTeams(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	resp, err := svc.Dashboard(context.Background(), api.DashboardRequest{
		League: "Premier",
		Team1:  "TeamX",
		Team2:  "TeamY",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Team2)
	assert.Equal(t, "TeamY", resp.Team2.Summary.Team)
	require.NotNil(t, resp.HeadToHead)
	assert.Equal(t, 1, resp.HeadToHead.HeadToHead.TotalMatches)
}

func TestReload_BroadcastsSnapshot(t *testing.T) {
	svc, store, hub := newTestService(testMatches())

	snapshot, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.reloads)
	require.Len(t, hub.reloaded, 1)
	assert.Equal(t, snapshot.Matches, hub.reloaded[0].Matches)
	assert.Empty(t, hub.errors)
}

func TestReload_FailureBroadcastsError(t *testing.T) {
	svc, store, hub := newTestService(testMatches())
	store.reloadErr = errors.New("workbook missing")

	_, err := svc.Reload(context.Background())
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "DATASET_LOAD_FAILED", apiErr.ErrorCode)

	assert.Empty(t, hub.reloaded)
	require.Len(t, hub.errors, 1)
	assert.Contains(t, hub.errors[0], "workbook missing")
}

func TestStatus(t *testing.T) {
	svc, _, _ := newTestService(testMatches())

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, status.Matches)
}
