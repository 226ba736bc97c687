package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName       = "socialsync/db"
	pipelineTracerName = "socialsync/pipeline"
)

type contextKey string

const (
	tenantIDKey  contextKey = "observability.tenant_id"
	storeIDKey   contextKey = "observability.store_id"
	requestIDKey contextKey = "observability.request_id"
	routeKey     contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
	SetAttributes(...attribute.KeyValue)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", "sqlite"),
		attribute.String("db.query_name", queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	attrs = append(attrs, identityAttributes(ctx)...)

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, otelSpan{inner: span}
}

// StartPipelineSpan starts an internal span for one ingestion pipeline step.
func StartPipelineSpan(ctx context.Context, step string, attrs ...attribute.KeyValue) (context.Context, Span) {
	attrs = append(attrs, identityAttributes(ctx)...)
	ctx, span := otel.Tracer(pipelineTracerName).Start(ctx, "pipeline."+strings.TrimSpace(step),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithStoreIdentity enriches context and current span with tenant/store attributes.
func WithStoreIdentity(ctx context.Context, tenantID, storeID string) context.Context {
	tenantID = strings.TrimSpace(tenantID)
	storeID = strings.TrimSpace(storeID)
	if tenantID != "" {
		ctx = context.WithValue(ctx, tenantIDKey, tenantID)
	}
	if storeID != "" {
		ctx = context.WithValue(ctx, storeIDKey, storeID)
	}
	if attrs := identityAttributes(ctx); len(attrs) > 0 {
		trace.SpanFromContext(ctx).SetAttributes(attrs...)
	}
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}
	setSpanRequestAttributes(ctx, requestID, route)
	return ctx
}

// TenantIDFromContext extracts the tenant resolved for the current request.
func TenantIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, tenantIDKey)
}

// StoreIDFromContext extracts the store resolved for the current request.
func StoreIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, storeIDKey)
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDKey)
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, routeKey)
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	return value, ok && value != ""
}

func identityAttributes(ctx context.Context) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	if tenantID, ok := TenantIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("socialsync.tenant_id", tenantID))
	}
	if storeID, ok := StoreIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("socialsync.store_id", storeID))
	}
	return attrs
}

func setSpanRequestAttributes(ctx context.Context, requestID, route string) {
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		attrs = append(attrs, attribute.String("http.route", route))
	}
	if len(attrs) > 0 {
		trace.SpanFromContext(ctx).SetAttributes(attrs...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	if s.inner == nil || len(attrs) == 0 {
		return
	}
	s.inner.SetAttributes(attrs...)
}
