package system

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

const tracerName = "github.com/lixenwraith/allerbees/system"

// TelemetrySystem traces each session as one span with gameplay events attached
// Uses the global tracer provider; without telemetry setup the spans are no-ops
type TelemetrySystem struct {
	world  *engine.World
	tracer trace.Tracer

	span trace.Span

	enabled bool
}

func NewTelemetrySystem(world *engine.World) engine.System {
	return NewTelemetrySystemWithTracer(world, otel.Tracer(tracerName))
}

// NewTelemetrySystemWithTracer uses an explicit tracer instead of the global provider
func NewTelemetrySystemWithTracer(world *engine.World, tracer trace.Tracer) engine.System {
	s := &TelemetrySystem{
		world:  world,
		tracer: tracer,
	}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {
	s.enabled = true
}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionStart,
		event.EventSessionEnd,
		event.EventSneeze,
		event.EventWiggleComplete,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *TelemetrySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled {
		return
	}

	switch payload := ev.Payload.(type) {
	case *event.SessionStartPayload:
		s.endSpan()
		_, s.span = s.tracer.Start(context.Background(), "session",
			trace.WithAttributes(attribute.Int("allerbees.session", payload.Session)),
		)

	case *event.SessionEndPayload:
		if s.span == nil {
			return
		}
		s.span.SetAttributes(
			attribute.String("allerbees.outcome", payload.Outcome),
			attribute.String("allerbees.reason", payload.Reason),
			attribute.Int64("allerbees.elapsed_ms", payload.Elapsed.Milliseconds()),
			attribute.Int("allerbees.pollen", payload.Pollen),
			attribute.Int("allerbees.sneezes", payload.Sneezes),
		)
		s.endSpan()

	case *event.SneezePayload:
		if s.span != nil {
			s.span.AddEvent("sneeze", trace.WithAttributes(
				attribute.Int("allerbees.dropped", payload.Dropped),
				attribute.Int("allerbees.count", payload.Count),
			))
		}

	case *event.WigglePayload:
		if s.span != nil {
			s.span.AddEvent("wiggle", trace.WithAttributes(
				attribute.Int("allerbees.heads", payload.Heads),
			))
		}
	}
}

func (s *TelemetrySystem) endSpan() {
	if s.span != nil {
		s.span.End()
		s.span = nil
	}
}

// Update implements System interface (no tick-based logic)
func (s *TelemetrySystem) Update() {}
