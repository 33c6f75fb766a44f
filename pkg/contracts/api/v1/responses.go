package api

import (
	"time"

	"matchday/pkg/contracts/domain"
)

// LeaguesResponse lists the distinct leagues in the dataset, sorted.
type LeaguesResponse struct {
	Leagues []string `json:"leagues"`
}

// TeamsResponse lists the distinct teams of a league, sorted.
type TeamsResponse struct {
	League string   `json:"league,omitempty"`
	Teams  []string `json:"teams"`
}

// MatchesResponse carries the filtered fixture list.
type MatchesResponse struct {
	Count   int            `json:"count"`
	Matches []domain.Match `json:"matches"`
}

// TopScorersResponse carries the ranked goal totals for a league.
type TopScorersResponse struct {
	League  string             `json:"league"`
	Limit   int                `json:"limit"`
	Scorers []domain.TeamGoals `json:"scorers"`
}

// HeadToHeadResponse carries the direct-fixture comparison plus the fixtures
// it was computed from.
type HeadToHeadResponse struct {
	HeadToHead domain.HeadToHead `json:"head_to_head"`
	Matches    []domain.Match    `json:"matches"`
}

// TeamPanel bundles everything the dashboard shows for one selected team.
type TeamPanel struct {
	Summary   domain.TeamSummary `json:"summary"`
	GoalSplit domain.GoalSplit   `json:"goal_split"`
	FoulSplit domain.FoulSplit   `json:"foul_split"`
	Matches   []domain.Match     `json:"matches"`
}

// DashboardResponse is the one-shot payload backing the whole dashboard
// view: the primary team panel, optionally a second team panel with the
// head-to-head comparison, and the league's top scorers.
type DashboardResponse struct {
	League     string              `json:"league"`
	From       string              `json:"from,omitempty"`
	To         string              `json:"to,omitempty"`
	Team1      TeamPanel           `json:"team1"`
	Team2      *TeamPanel          `json:"team2,omitempty"`
	HeadToHead *HeadToHeadResponse `json:"head_to_head,omitempty"`
	TopScorers TopScorersResponse  `json:"top_scorers"`
}

// DatasetStatusResponse reports the loaded dataset metadata.
type DatasetStatusResponse struct {
	Source     string    `json:"source"`
	Matches    int       `json:"matches"`
	Leagues    int       `json:"leagues"`
	EarliestAt time.Time `json:"earliest_at"`
	LatestAt   time.Time `json:"latest_at"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// HealthResponse is the aggregate health report.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is one named health check outcome.
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// VersionResponse reports build information.
type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}
