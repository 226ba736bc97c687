package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("SOCIALSYNC_ENV", "dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Sync.MaxPosts != 50 {
		t.Fatalf("expected default max posts 50, got %d", cfg.Sync.MaxPosts)
	}
	if cfg.Sync.DefaultCurrency != "UGX" {
		t.Fatalf("expected default currency UGX, got %q", cfg.Sync.DefaultCurrency)
	}
	if cfg.ProviderTimeout() != 5*time.Second {
		t.Fatalf("expected 5s provider timeout, got %s", cfg.ProviderTimeout())
	}
}

func TestLoadRequiresSecretsOutsideLocal(t *testing.T) {
	t.Setenv("SOCIALSYNC_ENV", "production")
	t.Setenv("SOCIALSYNC_WEBHOOK_APP_SECRET", "")
	t.Setenv("SOCIALSYNC_WEBHOOK_VERIFY_TOKEN", "verify")
	t.Setenv("SOCIALSYNC_API_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing secrets in production")
	}
	if !strings.Contains(err.Error(), "SOCIALSYNC_WEBHOOK_APP_SECRET") || !strings.Contains(err.Error(), "SOCIALSYNC_API_TOKEN") {
		t.Fatalf("expected missing keys in error, got %v", err)
	}
	if strings.Contains(err.Error(), "SOCIALSYNC_WEBHOOK_VERIFY_TOKEN") {
		t.Fatalf("verify token was set and should not be reported, got %v", err)
	}
}

func TestLoadForToolAllowsMissingSecretsOutsideLocal(t *testing.T) {
	t.Setenv("SOCIALSYNC_ENV", "production")
	t.Setenv("SOCIALSYNC_WEBHOOK_APP_SECRET", "")
	t.Setenv("SOCIALSYNC_API_TOKEN", "")

	if _, err := LoadForTool(); err != nil {
		t.Fatalf("expected no error for tool config load, got %v", err)
	}
}

func TestLoadClampsSyncSettings(t *testing.T) {
	t.Setenv("SOCIALSYNC_ENV", "test")
	t.Setenv("SOCIALSYNC_SYNC_MAX_POSTS", "500")
	t.Setenv("SOCIALSYNC_SYNC_WORKERS", "99")
	t.Setenv("SOCIALSYNC_GRAPH_TIMEOUT_MS", "10")
	t.Setenv("SOCIALSYNC_DEFAULT_CURRENCY", "kes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Sync.MaxPosts != 50 {
		t.Fatalf("expected max posts clamped to 50, got %d", cfg.Sync.MaxPosts)
	}
	if cfg.Sync.Workers != 16 {
		t.Fatalf("expected workers clamped to 16, got %d", cfg.Sync.Workers)
	}
	if cfg.Provider.TimeoutMS != 500 {
		t.Fatalf("expected timeout clamped to 500ms, got %d", cfg.Provider.TimeoutMS)
	}
	if cfg.Sync.DefaultCurrency != "KES" {
		t.Fatalf("expected currency KES, got %q", cfg.Sync.DefaultCurrency)
	}
}

func TestLoadParsesOTLPHeaders(t *testing.T) {
	t.Setenv("SOCIALSYNC_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-trace=trace-only")
	t.Setenv("SOCIALSYNC_OTEL_METRICS_CONSOLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" {
		t.Fatalf("expected common header in trace headers, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPTraceHeaders["x-trace"] != "trace-only" {
		t.Fatalf("expected trace-specific header, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if _, ok := cfg.Observability.OTLPMetricHeaders["x-trace"]; ok {
		t.Fatalf("trace header leaked into metric headers: %#v", cfg.Observability.OTLPMetricHeaders)
	}
}
