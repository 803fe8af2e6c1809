package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/optic/internal/adapters/telemetry"
	"go.trai.ch/optic/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, parent := tracer.Start(context.Background(), "optimize")
	parent.SetAttribute("application", "frontend")
	parent.SetAttribute("modules", 3)
	parent.SetAttribute("force", true)
	parent.SetAttribute("plugins", []string{"a", "b"})
	parent.SetAttribute("ratio", 0.5)
	parent.SetAttribute("size", int64(7))
	parent.SetAttribute("other", struct{ X int }{1})

	_, child := tracer.Start(ctx, "scan")
	child.RecordError(errors.New("unreadable"))
	child.RecordError(nil)
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "scan", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "unreadable", spans[0].Status().Description)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	attrs := spans[1].Attributes()
	assert.Contains(t, attrs, attribute.String("application", "frontend"))
	assert.Contains(t, attrs, attribute.Int("modules", 3))
	assert.Contains(t, attrs, attribute.Bool("force", true))
	assert.Contains(t, attrs, attribute.StringSlice("plugins", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestPhaseLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "compile took")
		assert.Contains(t, msg, "modules=2")
	})
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "save took")
		assert.Contains(t, msg, "failed: disk full")
	})

	tracer := telemetry.NewOTelTracer("test", telemetry.NewPhaseLogger(log))
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute("modules", 2)
	span.End()

	_, span = tracer.Start(context.Background(), "save")
	span.RecordError(errors.New("disk full"))
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
