// Package observability decorates the persons service with tracing,
// structured logging, and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
	"github.com/relatia/people-pets-api/internal/domains/persons/ports"
)

const tracerName = "github.com/relatia/people-pets-api/internal/domains/persons/adapters/observability"

var _ ports.Service = (*Service)(nil)

// Service wraps a persons service with instrumentation.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create the service counters.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	ctx, span := s.tracer.Start(ctx, "persons.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list persons")
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	ctx, span := s.tracer.Start(ctx, "persons.GetByID",
		trace.WithAttributes(attribute.String("person.id", id.String())))
	defer span.End()
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get person",
			slog.String("person.id", id.String()))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, draft domain.Person) (*domain.Person, error) {
	ctx, span := s.tracer.Start(ctx, "persons.Create")
	defer span.End()
	result, err := s.inner.Create(ctx, draft)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create person")
	}
	s.metrics.recordCreated(ctx)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "person created",
		slog.String("person.id", result.ID.String()))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, draft domain.Person) (*domain.Person, error) {
	ctx, span := s.tracer.Start(ctx, "persons.Update",
		trace.WithAttributes(attribute.String("person.id", id.String())))
	defer span.End()
	result, err := s.inner.Update(ctx, id, draft)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update person",
			slog.String("person.id", id.String()))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "persons.Delete",
		trace.WithAttributes(attribute.String("person.id", id.String())))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete person",
			slog.String("person.id", id.String()))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) SearchByName(ctx context.Context, term string) ([]domain.Person, error) {
	ctx, span := s.tracer.Start(ctx, "persons.SearchByName")
	defer span.End()
	result, err := s.inner.SearchByName(ctx, term)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search persons")
	}
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("persons.service.created", metric.WithDescription("Number of persons created"))
	updated, _ := m.Int64Counter("persons.service.updated", metric.WithDescription("Number of persons updated"))
	deleted, _ := m.Int64Counter("persons.service.deleted", metric.WithDescription("Number of persons deleted"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.updated != nil {
		m.updated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}
