// Package api contains API contract definitions for the Matchday dashboard.
// Version v1 represents the current stable API version.
package api

// DateRangeRequest represents an inclusive date range in requests.
// An empty bound means "no limit on that side".
type DateRangeRequest struct {
	From string `json:"from" query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MatchFilterRequest represents the common fixture filter parameters.
type MatchFilterRequest struct {
	League string `json:"league" query:"league" validate:"omitempty,max=100"`
	Team   string `json:"team" query:"team" validate:"omitempty,max=100"`
	DateRangeRequest
}

// TeamSummaryRequest represents a per-team statistics request.
type TeamSummaryRequest struct {
	League string `json:"league" query:"league" validate:"omitempty,max=100"`
	Team   string `json:"team" query:"team" validate:"required,max=100"`
	DateRangeRequest
}

// HeadToHeadRequest represents a direct-fixture comparison request.
type HeadToHeadRequest struct {
	League string `json:"league" query:"league" validate:"omitempty,max=100"`
	Team1  string `json:"team1" query:"team1" validate:"required,max=100"`
	Team2  string `json:"team2" query:"team2" validate:"required,max=100,nefield=Team1"`
	DateRangeRequest
}

// TopScorersRequest represents a top-scoring-teams ranking request.
type TopScorersRequest struct {
	League string `json:"league" query:"league" validate:"required,max=100"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=50"`
	DateRangeRequest
}

// DashboardRequest represents the one-shot dashboard payload request.
// Team2 is optional; the sentinel value "None" is treated as absent to match
// the filter widget's default option.
type DashboardRequest struct {
	League string `json:"league" query:"league" validate:"required,max=100"`
	Team1  string `json:"team1" query:"team1" validate:"required,max=100"`
	Team2  string `json:"team2" query:"team2" validate:"omitempty,max=100"`
	DateRangeRequest
}
