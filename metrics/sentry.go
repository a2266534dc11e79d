package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client.
// Pass enabled=false when Sentry is not configured; every method then becomes a no-op.
func NewSentryMetrics(enabled bool) *SentryMetrics {
	return &SentryMetrics{
		enabled: enabled,
	}
}

// StartRun starts a transaction for a whole demo run.
// The returned context carries the transaction; call finish when the run ends.
func (m *SentryMetrics) StartRun(ctx context.Context, name string) (context.Context, func()) {
	if !m.enabled {
		return ctx, func() {}
	}

	transaction := sentry.StartTransaction(ctx, name)
	transaction.Op = "musicapp.run"
	return transaction.Context(), transaction.Finish
}

// RecordStep records one demo step, e.g. building or transposing an element
func (m *SentryMetrics) RecordStep(ctx context.Context, step string, duration time.Duration, err error) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "musicapp.step")
	defer span.Finish()

	span.SetTag("step", step)
	span.SetTag("success", fmt.Sprintf("%t", err == nil))
	span.SetData("duration_ms", duration.Milliseconds())

	if err != nil {
		span.SetData("error", err.Error())
		span.Status = sentry.SpanStatusInternalError
	} else {
		span.Status = sentry.SpanStatusOK
	}

	span.Description = fmt.Sprintf("Step: %s", step)
}

// RecordElement records one rendering as a child span of the current run
func (m *SentryMetrics) RecordElement(ctx context.Context, kind string, rendered string) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "musicapp.render")
	defer span.Finish()

	span.SetTag("element", kind)
	span.SetData("rendered_bytes", len(rendered))
	span.SetData("rendered_lines", strings.Count(rendered, "\n")+1)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Render: %s", kind)
}

// RecordFailure reports an error that ended a run
func (m *SentryMetrics) RecordFailure(ctx context.Context, err error) {
	if !m.enabled || err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
