package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/primekit/primekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// SieveMetrics holds OpenTelemetry metric instruments for the prime sieve.
type SieveMetrics struct {
	candidatesInspected metric.Int64Counter
	primesEmitted       metric.Int64Counter
	stageDepth          metric.Int64UpDownCounter
	takeDuration        metric.Float64Histogram
}

// NewSieveMetrics creates the sieve metric instruments on the given meter.
func NewSieveMetrics(meter metric.Meter) (*SieveMetrics, error) {
	candidatesInspected, err := meter.Int64Counter("sieve.candidates.inspected",
		metric.WithDescription("Total raw natural numbers inspected by the sieve"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sieve.candidates.inspected counter: %w", err)
	}

	primesEmitted, err := meter.Int64Counter("sieve.primes.emitted",
		metric.WithDescription("Total primes emitted by the sieve"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sieve.primes.emitted counter: %w", err)
	}

	stageDepth, err := meter.Int64UpDownCounter("sieve.stage.depth",
		metric.WithDescription("Number of filter stages currently composed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sieve.stage.depth gauge: %w", err)
	}

	takeDuration, err := meter.Float64Histogram("sieve.take.duration",
		metric.WithDescription("Duration of bounded take operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sieve.take.duration histogram: %w", err)
	}

	return &SieveMetrics{
		candidatesInspected: candidatesInspected,
		primesEmitted:       primesEmitted,
		stageDepth:          stageDepth,
		takeDuration:        takeDuration,
	}, nil
}

// RecordCandidate records one inspected raw candidate.
func (m *SieveMetrics) RecordCandidate(ctx context.Context, sequenceID string) {
	m.candidatesInspected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("sequence_id", sequenceID),
	))
}

// RecordPrime records one emitted prime and the matching stage growth.
func (m *SieveMetrics) RecordPrime(ctx context.Context, sequenceID string) {
	attrs := metric.WithAttributes(attribute.String("sequence_id", sequenceID))
	m.primesEmitted.Add(ctx, 1, attrs)
	m.stageDepth.Add(ctx, 1, attrs)
}

// RecordTake records the duration of a completed bounded take.
func (m *SieveMetrics) RecordTake(ctx context.Context, sequenceID string, count int64, duration time.Duration) {
	m.takeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("sequence_id", sequenceID),
		attribute.Int64("count", count),
	))
}
