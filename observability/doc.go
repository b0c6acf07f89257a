// Package observability provides OpenTelemetry tracing and metrics
// integration for primekit.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("primes"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewSieveMetrics(observability.Meter("primes"))
//	eng := sieve.NewEngine(sieve.WithMetrics(metrics))
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("primes"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanSieveTake)
//	defer span.End()
package observability
