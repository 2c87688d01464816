// Package observability wires up OpenTelemetry tracing and metrics for
// fetchkit consumers. Without initialization the otel globals default to
// no-ops, so fetch sessions instrument themselves at zero cost; calling
// InitTracer and InitMeter turns the same instrumentation into exported
// telemetry.
package observability
