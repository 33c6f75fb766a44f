// Package app wires the whole service together: configuration, logging,
// metrics, the dataset store, the websocket hub, and the chi router.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"matchday/internal/config"
	"matchday/internal/dataset"
	apierrors "matchday/internal/errors"
	"matchday/internal/infrastructure"
	"matchday/internal/middleware"
	"matchday/internal/services"
	transport "matchday/internal/transport/http"
	"matchday/internal/websocket"
)

// Application is the composed service.
type Application struct {
	Config *config.Config
	Logger *slog.Logger

	otel    *infrastructure.OTelProviders
	metrics *infrastructure.DashboardMetrics

	store *dataset.Store
	hub   *websocket.Hub

	dashboardSvc *services.DashboardService
	healthSvc    *services.HealthService

	router chi.Router
	server *http.Server
}

// New assembles the application from configuration. The frontend filesystem
// is served at the root path.
func New(cfg *config.Config, frontendFS fs.FS) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(logger)
	if err != nil {
		return nil, fmt.Errorf("initialize otel: %w", err)
	}

	metrics, err := infrastructure.NewDashboardMetrics(otelProviders.Meter)
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	source, err := newSource(cfg.Dataset)
	if err != nil {
		return nil, err
	}

	store := dataset.NewStore(source, logger)
	hub := websocket.NewHub(logger)

	a := &Application{
		Config:       cfg,
		Logger:       logger,
		otel:         otelProviders,
		metrics:      metrics,
		store:        store,
		hub:          hub,
		dashboardSvc: services.NewDashboardService(store, hub, metrics, logger),
		healthSvc:    services.NewHealthService(store, logger),
	}

	a.setupRouter(frontendFS)
	a.createServer()
	return a, nil
}

// newSource picks the configured dataset backend.
func newSource(cfg config.DatasetConfig) (dataset.Source, error) {
	switch cfg.Source {
	case "file":
		return &dataset.FileSource{Path: cfg.FilePath, Sheet: cfg.SheetName}, nil
	case "sheet":
		return &dataset.SheetSource{
			SpreadsheetID: cfg.SpreadsheetID,
			Range:         cfg.SheetRange,
			APIKey:        cfg.APIKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown dataset source: %q", cfg.Source)
	}
}

func (a *Application) setupRouter(frontendFS fs.FS) {
	r := chi.NewRouter()

	errHandler := apierrors.NewErrorHandler(a.Logger, false)

	// Order matters: request IDs first so every later middleware and
	// handler logs with the trace_id.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Recoverer(a.Logger))
	r.Use(middleware.Metrics(a.metrics))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(5))

	if a.Config.Security.EnableCORS {
		r.Use(middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		)
		r.Use(limiter.Handler)
	}

	r.NotFound(errHandler.NotFound)
	r.MethodNotAllowed(errHandler.MethodNotAllowed)

	dashboardHandler := transport.NewDashboardHandler(a.dashboardSvc, errHandler, a.Logger)
	exportHandler := transport.NewExportHandler(a.dashboardSvc, errHandler, a.Logger)
	healthHandler := transport.NewHealthHandler(a.healthSvc, a.Logger)
	wsHandler := transport.NewWebSocketHandler(a.hub, a.Config.Security.AllowedOrigins, errHandler, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30*time.Second, a.Logger))
		r.Mount("/", dashboardHandler.Routes())
		r.Mount("/export", exportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)
	})

	r.Get("/ws", wsHandler.ServeHTTP)
	r.Handle("/metrics", a.otel.PrometheusHTTP)

	if frontendFS != nil {
		r.Handle("/*", http.FileServer(http.FS(frontendFS)))
	}

	a.router = r
}

func (a *Application) createServer() {
	a.server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Router exposes the assembled handler, mainly for tests.
func (a *Application) Router() http.Handler {
	return a.router
}

// Run starts the hub and the HTTP server, loads the dataset, and blocks
// until the context is cancelled or the server fails.
func (a *Application) Run(ctx context.Context) error {
	a.hub.Start()

	// A missing or broken workbook must not keep the service down: the
	// health endpoints report degraded and a later reload can recover.
	if err := a.store.Load(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "initial dataset load failed, serving degraded",
			slog.String("error", err.Error()))
	} else {
		snap := a.store.Snapshot()
		a.metrics.MatchesLoaded.Record(ctx, int64(snap.Matches))
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.Stop()
	})

	return g.Wait()
}

// Stop shuts the server, hub, and metrics down gracefully.
func (a *Application) Stop() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.Info("shutting down")

	var firstErr error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		firstErr = fmt.Errorf("server shutdown: %w", err)
	}

	a.hub.Stop()

	if err := a.otel.Shutdown(shutdownCtx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("otel shutdown: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close log file: %w", err)
	}

	return firstErr
}
