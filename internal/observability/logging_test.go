package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapSlogHandlerAddsStoreAndRequestFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)

	ctx := WithRequestMetadata(context.Background(), "req-1", "/webhooks/social")
	ctx = WithStoreIdentity(ctx, "tenant-1", "store-1")
	log.InfoContext(ctx, "imported post")

	out := buf.String()
	for _, want := range []string{"request_id=req-1", "route=/webhooks/social", "tenant_id=tenant-1", "store_id=store-1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log line, got %q", want, out)
		}
	}
	if strings.Contains(out, "trace_id") {
		t.Fatalf("expected no trace id without an active span, got %q", out)
	}
}

func TestWithStoreIdentityIgnoresBlankValues(t *testing.T) {
	t.Parallel()

	ctx := WithStoreIdentity(context.Background(), "  ", "")
	if _, ok := TenantIDFromContext(ctx); ok {
		t.Fatal("expected no tenant id")
	}
	if _, ok := StoreIDFromContext(ctx); ok {
		t.Fatal("expected no store id")
	}
}
