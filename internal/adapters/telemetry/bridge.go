package telemetry

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SummaryBridge implements sdktrace.SpanProcessor and prints one timing line
// per finished span, e.g. "[trace] restore.step 3ms ok".
type SummaryBridge struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSummaryBridge returns a new SummaryBridge writing to out.
func NewSummaryBridge(out io.Writer) *SummaryBridge {
	return &SummaryBridge{out: out}
}

// OnStart does nothing.
func (b *SummaryBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd prints the span name, duration and status.
func (b *SummaryBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	status := "ok"
	if s.Status().Code == codes.Error {
		status = "failed: " + s.Status().Description
	}
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = fmt.Fprintf(b.out, "[trace] %s %s %s\n", s.Name(), elapsed, status)
}

// ForceFlush does nothing.
func (b *SummaryBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *SummaryBridge) Shutdown(_ context.Context) error {
	return nil
}

// InstallSummary registers a global tracer provider that reports every span
// to out. The returned function flushes and uninstalls it.
func InstallSummary(out io.Writer) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewSummaryBridge(out)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
