package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apierrors "matchday/internal/errors"
	"matchday/internal/infrastructure"
	"matchday/internal/stats"
	api "matchday/pkg/contracts/api/v1"
	"matchday/pkg/contracts/domain"
	"matchday/pkg/contracts/events"
)

// dateLayout is the wire format for date bounds.
const dateLayout = "2006-01-02"

// noTeamSentinel is the filter widget's "no second team" option.
const noTeamSentinel = "None"

// DatasetStore is the slice of the dataset store the service needs.
type DatasetStore interface {
	Load(ctx context.Context) error
	Reload(ctx context.Context) (events.DatasetSnapshot, error)
	Matches() []domain.Match
	Snapshot() events.DatasetSnapshot
	Ready() bool
}

// EventBroadcaster pushes dataset lifecycle events to connected dashboards.
type EventBroadcaster interface {
	BroadcastDatasetReloaded(snapshot events.DatasetSnapshot, traceID string)
	BroadcastDatasetError(message, traceID string)
}

// DashboardService answers every read query of the dashboard and owns the
// dataset reload flow.
type DashboardService struct {
	store   DatasetStore
	hub     EventBroadcaster
	logger  *slog.Logger
	metrics *infrastructure.DashboardMetrics
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(store DatasetStore, hub EventBroadcaster, metrics *infrastructure.DashboardMetrics, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		store:   store,
		hub:     hub,
		logger:  logger.With(slog.String("service", "dashboard")),
		metrics: metrics,
	}
}

// Leagues returns the distinct league names in the dataset, sorted.
func (s *DashboardService) Leagues(ctx context.Context) ([]string, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return stats.Leagues(matches), nil
}

// Teams returns the distinct team names of a league, sorted. An empty league
// returns teams across all leagues.
func (s *DashboardService) Teams(ctx context.Context, league string) ([]string, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, league); err != nil {
		return nil, err
	}
	return stats.Teams(matches, league), nil
}

// Matches returns the fixtures passing the filter, preserving dataset order.
func (s *DashboardService) Matches(ctx context.Context, req api.MatchFilterRequest) (*api.MatchesResponse, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, req.League); err != nil {
		return nil, err
	}
	if err := s.checkTeam(matches, req.League, req.Team); err != nil {
		return nil, err
	}

	f, err := buildFilter(req.League, req.Team, req.DateRangeRequest)
	if err != nil {
		return nil, err
	}

	filtered := stats.Apply(matches, f)
	return &api.MatchesResponse{Count: len(filtered), Matches: filtered}, nil
}

// Summary computes the per-team statistics over the filtered subset.
func (s *DashboardService) Summary(ctx context.Context, req api.TeamSummaryRequest) (*domain.TeamSummary, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, req.League); err != nil {
		return nil, err
	}
	if err := s.checkTeam(matches, req.League, req.Team); err != nil {
		return nil, err
	}

	f, err := buildFilter(req.League, req.Team, req.DateRangeRequest)
	if err != nil {
		return nil, err
	}

	summary := stats.Summarize(stats.Apply(matches, f), req.Team)
	return &summary, nil
}

// HeadToHead compares two teams over their direct fixtures.
func (s *DashboardService) HeadToHead(ctx context.Context, req api.HeadToHeadRequest) (*api.HeadToHeadResponse, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, req.League); err != nil {
		return nil, err
	}
	for _, team := range []string{req.Team1, req.Team2} {
		if err := s.checkTeam(matches, req.League, team); err != nil {
			return nil, err
		}
	}

	f, err := buildFilter(req.League, "", req.DateRangeRequest)
	if err != nil {
		return nil, err
	}

	direct := stats.DirectFixtures(matches, f, req.Team1, req.Team2)
	h2h := stats.HeadToHead(direct, req.Team1, req.Team2)
	return &api.HeadToHeadResponse{HeadToHead: h2h, Matches: direct}, nil
}

// TopScorers ranks the league's teams by combined home plus away goals.
func (s *DashboardService) TopScorers(ctx context.Context, req api.TopScorersRequest) (*api.TopScorersResponse, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, req.League); err != nil {
		return nil, err
	}

	f, err := buildFilter(req.League, "", req.DateRangeRequest)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = stats.DefaultTopScorersLimit
	}

	return &api.TopScorersResponse{
		League:  req.League,
		Limit:   limit,
		Scorers: stats.TopScorers(stats.Apply(matches, f), limit),
	}, nil
}

// Dashboard assembles the whole dashboard view in one call: the primary team
// panel, optionally a second panel plus head-to-head, and the league's top
// scorers.
func (s *DashboardService) Dashboard(ctx context.Context, req api.DashboardRequest) (*api.DashboardResponse, error) {
	matches, err := s.dataset()
	if err != nil {
		return nil, err
	}
	if err := s.checkLeague(matches, req.League); err != nil {
		return nil, err
	}
	if err := s.checkTeam(matches, req.League, req.Team1); err != nil {
		return nil, err
	}

	team2 := req.Team2
	if team2 == noTeamSentinel {
		team2 = ""
	}
	if err := s.checkTeam(matches, req.League, team2); err != nil {
		return nil, err
	}

	scope, err := buildFilter(req.League, "", req.DateRangeRequest)
	if err != nil {
		return nil, err
	}

	resp := &api.DashboardResponse{
		League: req.League,
		From:   req.From,
		To:     req.To,
		Team1:  buildTeamPanel(matches, scope, req.Team1),
	}

	if team2 != "" {
		panel := buildTeamPanel(matches, scope, team2)
		resp.Team2 = &panel

		direct := stats.DirectFixtures(matches, scope, req.Team1, team2)
		resp.HeadToHead = &api.HeadToHeadResponse{
			HeadToHead: stats.HeadToHead(direct, req.Team1, team2),
			Matches:    direct,
		}
	}

	resp.TopScorers = api.TopScorersResponse{
		League:  req.League,
		Limit:   stats.DefaultTopScorersLimit,
		Scorers: stats.TopScorers(stats.Apply(matches, scope), stats.DefaultTopScorersLimit),
	}

	return resp, nil
}

// Status returns the loaded dataset metadata.
func (s *DashboardService) Status(ctx context.Context) (*api.DatasetStatusResponse, error) {
	if !s.store.Ready() {
		return nil, apierrors.ErrDatasetNotReady
	}
	snap := s.store.Snapshot()
	return &api.DatasetStatusResponse{
		Source:     snap.Source,
		Matches:    snap.Matches,
		Leagues:    snap.Leagues,
		EarliestAt: snap.EarliestAt,
		LatestAt:   snap.LatestAt,
		LoadedAt:   snap.LoadedAt,
	}, nil
}

// Reload re-reads the source and announces the outcome to connected
// dashboards. On failure the previous dataset stays in service.
func (s *DashboardService) Reload(ctx context.Context) (events.DatasetSnapshot, error) {
	traceID := infrastructure.GetTraceID(ctx)

	snapshot, err := s.store.Reload(ctx)
	if err != nil {
		s.recordReload(ctx, "error")
		if s.hub != nil {
			s.hub.BroadcastDatasetError(err.Error(), traceID)
		}
		return events.DatasetSnapshot{}, apierrors.DatasetLoadError(err)
	}

	s.recordReload(ctx, "ok")
	if s.metrics != nil && s.metrics.MatchesLoaded != nil {
		s.metrics.MatchesLoaded.Record(ctx, int64(snapshot.Matches))
	}
	if s.hub != nil {
		s.hub.BroadcastDatasetReloaded(snapshot, traceID)
	}

	s.logger.InfoContext(ctx, "dataset reloaded",
		slog.Int("matches", snapshot.Matches),
		slog.Int("leagues", snapshot.Leagues))
	return snapshot, nil
}

func (s *DashboardService) recordReload(ctx context.Context, outcome string) {
	if s.metrics == nil || s.metrics.DatasetReloads == nil {
		return
	}
	s.metrics.DatasetReloads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome)))
}

func (s *DashboardService) dataset() ([]domain.Match, error) {
	if !s.store.Ready() {
		return nil, apierrors.ErrDatasetNotReady
	}
	return s.store.Matches(), nil
}

// checkLeague verifies the league exists in the dataset. Empty means
// "all leagues" and always passes.
func (s *DashboardService) checkLeague(matches []domain.Match, league string) error {
	if league == "" {
		return nil
	}
	for _, m := range matches {
		if m.League == league {
			return nil
		}
	}
	return apierrors.ErrLeagueNotFound
}

// checkTeam verifies the team appears in the league (or anywhere when the
// league is empty). Empty team always passes.
func (s *DashboardService) checkTeam(matches []domain.Match, league, team string) error {
	if team == "" {
		return nil
	}
	for _, m := range matches {
		if league != "" && m.League != league {
			continue
		}
		if m.Involves(team) {
			return nil
		}
	}
	return apierrors.ErrTeamNotFound
}

// buildFilter converts wire-format bounds into an immutable filter.
func buildFilter(league, team string, dates api.DateRangeRequest) (stats.Filter, error) {
	f := stats.Filter{League: league, Team: team}

	if dates.From != "" {
		from, err := time.Parse(dateLayout, dates.From)
		if err != nil {
			return stats.Filter{}, apierrors.ErrValidation("from", "must be a YYYY-MM-DD date")
		}
		f.From = from
	}
	if dates.To != "" {
		to, err := time.Parse(dateLayout, dates.To)
		if err != nil {
			return stats.Filter{}, apierrors.ErrValidation("to", "must be a YYYY-MM-DD date")
		}
		f.To = to
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return stats.Filter{}, apierrors.ErrValidation("to", "must not be before from")
	}
	return f, nil
}

func buildTeamPanel(matches []domain.Match, scope stats.Filter, team string) api.TeamPanel {
	subset := stats.Apply(matches, scope.WithTeam(team))
	return api.TeamPanel{
		Summary:   stats.Summarize(subset, team),
		GoalSplit: stats.GoalSplitFor(subset, team),
		FoulSplit: stats.FoulSplitFor(subset, team),
		Matches:   subset,
	}
}
