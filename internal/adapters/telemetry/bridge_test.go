package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sieve/internal/adapters/telemetry"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/sieve/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newBridgedTracer(t *testing.T, log ports.Logger) *telemetry.OTelTracer {
	t.Helper()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracerWithProvider(tp, "test")
}

func TestBridge_ReportsSummarizedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := newBridgedTracer(t, log)
	_, span := tracer.Start(context.Background(), "sieve.build",
		ports.WithAttribute("sieve.bound", int64(100)))
	span.SetAttribute(telemetry.SummaryAttribute, 1234)
	span.End()

	assert.Contains(t, got, "sieve.build finished in ")
	assert.Contains(t, got, "sieve.bound=100")
	assert.Contains(t, got, "sieve.entries=1234")
}

func TestBridge_IgnoresPlainSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tracer := newBridgedTracer(t, log)
	_, span := tracer.Start(context.Background(), "factor.factorize",
		ports.WithAttribute("factor.number", int64(12)))
	span.SetAttribute("factor.count", 3)
	span.End()
}

func TestBridge_ReportsFailedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := newBridgedTracer(t, log)
	_, span := tracer.Start(context.Background(), "app.verify")
	span.SetAttribute(telemetry.SummaryAttribute, 10)
	span.RecordError(errors.New("digests differ"))
	span.End()

	assert.Equal(t, "app.verify failed: digests differ", got)
}

func TestBridge_NilLogger(t *testing.T) {
	tracer := newBridgedTracer(t, nil)
	_, span := tracer.Start(context.Background(), "sieve.build")
	span.SetAttribute(telemetry.SummaryAttribute, 1)
	assert.NotPanics(t, span.End)
}
