package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// ServiceName identifies this service in exported metrics
	ServiceName = "matchday"
	// ServiceVersion is the reported service version
	ServiceVersion = "1.0.0"
)

// OTelProviders holds the OpenTelemetry providers
type OTelProviders struct {
	MeterProvider  *sdkmetric.MeterProvider
	Meter          metric.Meter
	PrometheusHTTP http.Handler
}

// InitializeOTel sets up the OpenTelemetry meter provider with a Prometheus
// exporter. The returned PrometheusHTTP handler serves the /metrics scrape
// endpoint.
func InitializeOTel(logger *slog.Logger) (*OTelProviders, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(ServiceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	// A dedicated registry keeps instances isolated when several meter
	// providers exist in one process
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	logger.Info("OpenTelemetry metrics initialized",
		slog.String("service", ServiceName),
		slog.String("exporter", "prometheus"))

	return &OTelProviders{
		MeterProvider:  provider,
		Meter:          provider.Meter(ServiceName),
		PrometheusHTTP: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	if p == nil || p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider.Shutdown(ctx)
}

// DashboardMetrics carries the instrument handles used by the HTTP layer
// and the dataset store.
type DashboardMetrics struct {
	RequestsTotal  metric.Int64Counter
	DatasetReloads metric.Int64Counter
	MatchesLoaded  metric.Int64Gauge
}

// NewDashboardMetrics creates the service's metric instruments.
func NewDashboardMetrics(meter metric.Meter) (*DashboardMetrics, error) {
	requests, err := meter.Int64Counter("matchday_requests_total",
		metric.WithDescription("Total HTTP requests served"))
	if err != nil {
		return nil, err
	}

	reloads, err := meter.Int64Counter("matchday_dataset_reloads_total",
		metric.WithDescription("Dataset load and reload attempts"))
	if err != nil {
		return nil, err
	}

	loaded, err := meter.Int64Gauge("matchday_dataset_matches",
		metric.WithDescription("Number of match records currently loaded"))
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		RequestsTotal:  requests,
		DatasetReloads: reloads,
		MatchesLoaded:  loaded,
	}, nil
}
