// Package observability provides OpenTelemetry setup and the metric
// instruments grantkit emits: authorization decision counts and
// evaluation latency. Tracing and metrics export over OTLP HTTP; when
// nothing is initialized the global no-op providers apply, so
// instrumented code paths are safe in any environment.
package observability
