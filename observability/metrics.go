package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DecisionMetrics holds the instruments for authorization decisions.
type DecisionMetrics struct {
	decisionTotal    metric.Int64Counter
	decisionDuration metric.Float64Histogram
	encodeErrorTotal metric.Int64Counter
}

// NewDecisionMetrics creates the decision instruments on the given meter.
func NewDecisionMetrics(meter metric.Meter) (*DecisionMetrics, error) {
	decisionTotal, err := meter.Int64Counter("authz.decision.total",
		metric.WithDescription("Total number of authorization decisions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.decision.total counter: %w", err)
	}

	decisionDuration, err := meter.Float64Histogram("authz.decision.duration",
		metric.WithDescription("Duration of authorization decisions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.decision.duration histogram: %w", err)
	}

	encodeErrorTotal, err := meter.Int64Counter("authz.encode.errors",
		metric.WithDescription("Privilege records that failed to encode into tokens"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.encode.errors counter: %w", err)
	}

	return &DecisionMetrics{
		decisionTotal:    decisionTotal,
		decisionDuration: decisionDuration,
		encodeErrorTotal: encodeErrorTotal,
	}, nil
}

// RecordDecision records one authorization decision.
func (m *DecisionMetrics) RecordDecision(ctx context.Context, domain string, granted bool, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.Bool("granted", granted),
	)
	m.decisionTotal.Add(ctx, 1, attrs)
	m.decisionDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordEncodeError records a record that the codec refused to encode.
func (m *DecisionMetrics) RecordEncodeError(ctx context.Context, domain string) {
	if m == nil {
		return
	}
	m.encodeErrorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
	))
}
