package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Import paths reported on pipeline metrics.
const (
	PathWebhook = "webhook"
	PathSync    = "sync"
)

// PipelineMetrics records ingestion outcomes and webhook rejections.
type PipelineMetrics struct {
	outcomes metric.Int64Counter
	rejected metric.Int64Counter
	syncs    metric.Int64Counter
}

// NewPipelineMetrics registers the pipeline instruments on the global meter provider.
func NewPipelineMetrics() PipelineMetrics {
	meter := otel.Meter("github.com/fr0stylo/socialsync/internal/observability")
	outcomes, _ := meter.Int64Counter("socialsync.import.outcomes")
	rejected, _ := meter.Int64Counter("socialsync.webhook.rejected")
	syncs, _ := meter.Int64Counter("socialsync.sync.jobs")
	return PipelineMetrics{outcomes: outcomes, rejected: rejected, syncs: syncs}
}

// RecordOutcome counts one post outcome (created, skipped, failed).
func (m PipelineMetrics) RecordOutcome(ctx context.Context, path, outcome string) {
	if m.outcomes == nil {
		return
	}
	m.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("path", path),
		attribute.String("outcome", outcome),
	))
}

// RecordRejected counts one webhook request refused before processing.
func (m PipelineMetrics) RecordRejected(ctx context.Context, reason string) {
	if m.rejected == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordSync counts one finished sync job by final status.
func (m PipelineMetrics) RecordSync(ctx context.Context, status string) {
	if m.syncs == nil {
		return
	}
	m.syncs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}
