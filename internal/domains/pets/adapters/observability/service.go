// Package observability decorates the pets service with tracing, structured
// logging, and metrics.
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

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
)

const tracerName = "github.com/relatia/people-pets-api/internal/domains/pets/adapters/observability"

var _ ports.Service = (*Service)(nil)

// Service wraps a pets service with instrumentation.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

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

func (s *Service) List(ctx context.Context) ([]domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.List")
	defer span.End()
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pets")
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.GetByID",
		trace.WithAttributes(attribute.String("pet.id", id.String())))
	defer span.End()
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get pet",
			slog.String("pet.id", id.String()))
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, draft domain.Pet) (*domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.Create")
	defer span.End()
	result, err := s.inner.Create(ctx, draft)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create pet")
	}
	s.metrics.recordCreated(ctx, result.Species)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "pet created",
		slog.String("pet.id", result.ID.String()),
		slog.String("pet.species", result.Species))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, draft domain.Pet) (*domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.Update",
		trace.WithAttributes(attribute.String("pet.id", id.String())))
	defer span.End()
	result, err := s.inner.Update(ctx, id, draft)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update pet",
			slog.String("pet.id", id.String()))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "pets.Delete",
		trace.WithAttributes(attribute.String("pet.id", id.String())))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete pet",
			slog.String("pet.id", id.String()))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) GetBySpecies(ctx context.Context, species string) ([]domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.GetBySpecies",
		trace.WithAttributes(attribute.String("pet.species", species)))
	defer span.End()
	result, err := s.inner.GetBySpecies(ctx, species)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get pets by species")
	}
	return result, nil
}

func (s *Service) SearchByName(ctx context.Context, term string) ([]domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.SearchByName")
	defer span.End()
	result, err := s.inner.SearchByName(ctx, term)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search pets")
	}
	return result, nil
}

func (s *Service) GetByAgeRange(ctx context.Context, min, max int) ([]domain.Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.GetByAgeRange",
		trace.WithAttributes(attribute.Int("pet.age.min", min), attribute.Int("pet.age.max", max)))
	defer span.End()
	result, err := s.inner.GetByAgeRange(ctx, min, max)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get pets by age range")
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
	created, _ := m.Int64Counter("pets.service.created", metric.WithDescription("Number of pets created"))
	updated, _ := m.Int64Counter("pets.service.updated", metric.WithDescription("Number of pets updated"))
	deleted, _ := m.Int64Counter("pets.service.deleted", metric.WithDescription("Number of pets deleted"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, species string) {
	if m.created != nil {
		m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("pet.species", species)))
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
