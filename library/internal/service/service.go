package service

import (
	"context"
	"time"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/gh215tth/QLTV-dart/library/service"

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher kafka.Publisher
	tracer    trace.Tracer
	now       func() time.Time
}

type Option func(*Service)

func WithPublisher(p kafka.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithClock overrides the source of "today" for returns.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: kafka.NewNopPublisher(),
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// check is one step of an ordered validation; the first failing step wins.
type check func(ctx context.Context) error

func runChecks(ctx context.Context, checks ...check) error {
	for _, c := range checks {
		if err := c(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan marks only unexpected failures as span errors.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetAttributes(attribute.String("error.kind", errs.Kind(err)))
		if !errs.IsBusiness(err) && errs.Kind(err) != "not_found" {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

func (s *Service) publish(ctx context.Context, ev kafka.LoanEvent) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn("publish loan event",
			zap.String("type", string(ev.Type)),
			zap.Int("loan_id", ev.LoanID),
			zap.Error(err))
	}
}
