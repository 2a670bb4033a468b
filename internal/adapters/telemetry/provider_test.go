package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sieve/internal/adapters/telemetry"
	"go.trai.ch/sieve/internal/core/ports"
)

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracerWithProvider(tp, "test"), recorder
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "sieve.build",
		ports.WithAttribute("sieve.bound", int64(100)),
		ports.WithAttribute("sieve.strategy", "parallel"),
	)
	span.SetAttribute("sieve.workers", 4)
	span.SetAttribute("sieve.entries", 1234)
	span.SetAttribute("verify.consistent", true)
	span.SetAttribute("verify.digest", uint64(0xbeef))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "sieve.build", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, int64(100), attrs["sieve.bound"].AsInt64())
	assert.Equal(t, "parallel", attrs["sieve.strategy"].AsString())
	assert.Equal(t, int64(4), attrs["sieve.workers"].AsInt64())
	assert.Equal(t, int64(1234), attrs["sieve.entries"].AsInt64())
	assert.True(t, attrs["verify.consistent"].AsBool())
	assert.Equal(t, "000000000000beef", attrs["verify.digest"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "app.verify")
	span.RecordError(nil)
	span.RecordError(errors.New("digests differ"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "digests differ", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "anything", ports.WithAttribute("k", "v"))

	assert.Equal(t, ctx, gotCtx)
	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
}
