package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/optic/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*PhaseLogger)(nil)

// PhaseLogger implements sdktrace.SpanProcessor and reports the duration of every
// finished span through the logger.
type PhaseLogger struct {
	logger ports.Logger
}

// NewPhaseLogger returns a new PhaseLogger.
func NewPhaseLogger(logger ports.Logger) *PhaseLogger {
	return &PhaseLogger{logger: logger}
}

// OnStart does nothing.
func (p *PhaseLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and duration.
func (p *PhaseLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	msg := fmt.Sprintf("%s took %s", s.Name(), elapsed)
	for _, attr := range s.Attributes() {
		msg += fmt.Sprintf(" %s=%s", attr.Key, attr.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		p.logger.Warn(msg + " (failed: " + s.Status().Description + ")")
		return
	}
	p.logger.Info(msg)
}

// ForceFlush does nothing.
func (p *PhaseLogger) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *PhaseLogger) Shutdown(context.Context) error {
	return nil
}
