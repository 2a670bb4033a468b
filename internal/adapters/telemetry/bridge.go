package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sieve/internal/core/ports"
)

// SummaryAttribute marks spans whose completion is reported through the logger.
const SummaryAttribute = "sieve.entries"

// Bridge implements sdktrace.SpanProcessor to report finished spans through a Logger.
// Spans that fail are logged as warnings; spans carrying SummaryAttribute are logged
// with their duration and attributes. Everything else is ignored.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(fmt.Sprintf("%s failed: %s", s.Name(), desc))
		return
	}

	attrs := make([]string, 0, len(s.Attributes()))
	summarized := false
	for _, kv := range s.Attributes() {
		if string(kv.Key) == SummaryAttribute {
			summarized = true
		}
		attrs = append(attrs, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}
	if !summarized {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.logger.Info(fmt.Sprintf("%s finished in %s (%s)", s.Name(), elapsed, strings.Join(attrs, ", ")))
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// setupOTel installs an SDK tracer provider that reports spans through the bridge
// and registers it as the global provider.
func setupOTel(bridge *Bridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp
}
