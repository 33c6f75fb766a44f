package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	api "matchday/pkg/contracts/api/v1"
)

// Version is the build version, overridable at link time.
var Version = "1.0.0"

// HealthChecker reports the dataset state to the health endpoints.
type HealthChecker interface {
	Ready() bool
}

// HealthService aggregates liveness and readiness checks.
type HealthService struct {
	store     HealthChecker
	logger    *slog.Logger
	startedAt time.Time
}

// NewHealthService creates a health service.
func NewHealthService(store HealthChecker, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		store:     store,
		logger:    logger.With(slog.String("service", "health")),
		startedAt: time.Now(),
	}
}

// Health returns the aggregate health report. The service is degraded when
// the dataset has not finished loading but the process is otherwise fine.
func (s *HealthService) Health(ctx context.Context) *api.HealthResponse {
	checks := map[string]api.CheckResult{
		"dataset": s.datasetCheck(),
		"uptime": {
			Status:  "healthy",
			Message: time.Since(s.startedAt).Round(time.Second).String(),
		},
	}

	status := "healthy"
	for _, check := range checks {
		if check.Status != "healthy" {
			status = "degraded"
			break
		}
	}

	return &api.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Checks:    checks,
	}
}

// Ready reports whether the service can answer data queries.
func (s *HealthService) Ready(ctx context.Context) bool {
	return s.store.Ready()
}

// Version returns the build information.
func (s *HealthService) Version(ctx context.Context) *api.VersionResponse {
	return &api.VersionResponse{
		Version:   Version,
		GoVersion: runtime.Version(),
	}
}

func (s *HealthService) datasetCheck() api.CheckResult {
	if s.store.Ready() {
		return api.CheckResult{Status: "healthy"}
	}
	return api.CheckResult{Status: "unhealthy", Message: "dataset not loaded"}
}
