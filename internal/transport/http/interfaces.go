// Package http contains the chi HTTP handlers for the dashboard API.
package http

import (
	"context"

	api "matchday/pkg/contracts/api/v1"
	"matchday/pkg/contracts/domain"
	"matchday/pkg/contracts/events"
)

// DashboardReader answers the dashboard's read queries.
type DashboardReader interface {
	Leagues(ctx context.Context) ([]string, error)
	Teams(ctx context.Context, league string) ([]string, error)
	Matches(ctx context.Context, req api.MatchFilterRequest) (*api.MatchesResponse, error)
	Summary(ctx context.Context, req api.TeamSummaryRequest) (*domain.TeamSummary, error)
	HeadToHead(ctx context.Context, req api.HeadToHeadRequest) (*api.HeadToHeadResponse, error)
	TopScorers(ctx context.Context, req api.TopScorersRequest) (*api.TopScorersResponse, error)
	Dashboard(ctx context.Context, req api.DashboardRequest) (*api.DashboardResponse, error)
	Status(ctx context.Context) (*api.DatasetStatusResponse, error)
}

// DatasetReloader re-reads the dataset source on demand.
type DatasetReloader interface {
	Reload(ctx context.Context) (events.DatasetSnapshot, error)
}

// DashboardService is the full service surface the handlers depend on.
type DashboardService interface {
	DashboardReader
	DatasetReloader
}

// HealthService reports service health and build information.
type HealthService interface {
	Health(ctx context.Context) *api.HealthResponse
	Ready(ctx context.Context) bool
	Version(ctx context.Context) *api.VersionResponse
}
