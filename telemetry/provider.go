// Package telemetry configures OpenTelemetry tracing for game sessions
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/service"
)

// ServiceName is reported as the OTel resource service.name
const ServiceName = "allerbees"

// Setup installs a global tracer provider exporting to the configured OTLP endpoint
//
// Tracing is opt-in: with no endpoint, or with it disabled, Setup returns a
// no-op shutdown and leaves the global provider untouched.
func Setup(ctx context.Context, settings config.Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !settings.TelemetryEnabled() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(settings.OTelEndpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Service wraps Setup in the service lifecycle
type Service struct {
	settings config.Settings
	shutdown func(context.Context) error
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Name() string {
	return "telemetry"
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init(settings config.Settings) error {
	s.settings = settings
	return nil
}

func (s *Service) Start(ctx context.Context) error {
	shutdown, err := Setup(ctx, s.settings)
	if err != nil {
		return err
	}
	s.shutdown = shutdown
	return nil
}

// Stop flushes pending spans
func (s *Service) Stop() error {
	if s.shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.shutdown(ctx)
	s.shutdown = nil
	return err
}

var _ service.Service = (*Service)(nil)
