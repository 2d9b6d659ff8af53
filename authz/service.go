package authz

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/grantkit/errors"
	"github.com/skillsenselab/grantkit/logger"
	"github.com/skillsenselab/grantkit/observability"
	"github.com/skillsenselab/grantkit/privilege"
	"github.com/skillsenselab/grantkit/store"
)

// Service answers authorization queries by fetching a principal's
// records from a RecordSource and evaluating the encoded token
// collection. Every call works on a fresh snapshot, so updated
// privileges are visible on the next check without any cache to
// invalidate.
type Service struct {
	source  store.RecordSource
	log     *logger.Logger
	metrics *observability.DecisionMetrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger the service emits decisions on.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithMetrics sets the decision metrics instruments.
func WithMetrics(m *observability.DecisionMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a store-backed Checker.
func NewService(source store.RecordSource, opts ...Option) *Service {
	s := &Service{
		source: source,
		log:    logger.GetGlobalLogger().WithComponent("authz"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CollectionFor fetches and encodes the principal's current token
// collection. The returned slice is owned by the caller; it is never
// shared or mutated by the service.
func (s *Service) CollectionFor(ctx context.Context, principalID string) ([]privilege.Token, error) {
	records, err := s.source.GetPrivilegeRecords(ctx, principalID)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	tokens, err := privilege.EncodeRecords(records)
	if err != nil {
		s.metrics.RecordEncodeError(ctx, domainOf(err))
		s.log.Error("record failed to encode", logger.ErrorFields("encode", err))
		return nil, err
	}
	return tokens, nil
}

// HasAccountPrivilege implements Checker.
func (s *Service) HasAccountPrivilege(ctx context.Context, principalID, area string, min privilege.AccessLevel) (bool, error) {
	query := privilege.AccountQuery{Area: area, MinLevel: min}
	return s.evaluate(ctx, principalID, string(privilege.DomainAccount), query, logger.Fields(
		logger.FieldPrincipalID, principalID,
		logger.FieldArea, area,
		logger.FieldLevel, string(min),
	))
}

// HasProjectPrivilege implements Checker.
func (s *Service) HasProjectPrivilege(ctx context.Context, principalID, contextID, area string, min privilege.AccessLevel) (bool, error) {
	query := privilege.ProjectQuery{ContextID: contextID, Area: area, MinLevel: min}
	return s.evaluate(ctx, principalID, string(privilege.DomainProject), query, logger.Fields(
		logger.FieldPrincipalID, principalID,
		logger.FieldContextID, contextID,
		logger.FieldArea, area,
		logger.FieldLevel, string(min),
	))
}

func (s *Service) evaluate(ctx context.Context, principalID, domain string, query privilege.Query, fields map[string]interface{}) (bool, error) {
	ctx, span := observability.StartSpan(ctx, "authz.evaluate",
		trace.WithAttributes(attribute.String("domain", domain)))
	defer span.End()

	start := time.Now()
	tokens, err := s.CollectionFor(ctx, principalID)
	if err != nil {
		return false, err
	}

	granted, err := query.Evaluate(tokens)
	if err != nil {
		s.log.Error("evaluation failed on malformed token", logger.ErrorFields("evaluate", err))
		return false, err
	}

	s.metrics.RecordDecision(ctx, domain, granted, time.Since(start))
	fields[logger.FieldDomain] = domain
	fields[logger.FieldGranted] = granted
	s.log.Debug("authorization decision", fields)
	return granted, nil
}

// domainOf extracts the domain attribute for encode-error metrics.
func domainOf(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		if d, ok := appErr.Details["domain"].(string); ok {
			return d
		}
		if appErr.Code == errors.ErrCodeMissingContext {
			return string(privilege.DomainProject)
		}
	}
	return "unknown"
}
