package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort          = 8080
	defaultDBPath        = "data/socialsync"
	defaultGraphBaseURL  = "https://graph.instagram.com"
	defaultGraphTimeout  = 5000
	defaultSyncMaxPosts  = 50
	defaultSyncWorkers   = 4
	defaultStoreCurrency = "UGX"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Webhook       WebhookConfig
	Provider      ProviderConfig
	Sync          SyncConfig
	Notify        NotifyConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port     int
	APIToken string
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type WebhookConfig struct {
	AppSecret   string
	VerifyToken string
}

type ProviderConfig struct {
	GraphBaseURL string
	TimeoutMS    int
}

type SyncConfig struct {
	MaxPosts        int
	Workers         int
	DefaultCurrency string
}

type NotifyConfig struct {
	SinkURL string
	Source  string
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// Load reads configuration for the HTTP server.
func Load() (Config, error) {
	return load(true)
}

// LoadForTool loads config for CLI tools that never receive webhook or API traffic.
func LoadForTool() (Config, error) {
	return load(false)
}

func load(requireHTTPSecrets bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("socialsync_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("socialsync_port", defaultPort)
	v.SetDefault("socialsync_api_token", "")
	v.SetDefault("socialsync_db_path", defaultDBPath)
	v.SetDefault("socialsync_db_timing", false)
	v.SetDefault("socialsync_webhook_app_secret", "")
	v.SetDefault("socialsync_webhook_verify_token", "")
	v.SetDefault("socialsync_graph_base_url", defaultGraphBaseURL)
	v.SetDefault("socialsync_graph_timeout_ms", defaultGraphTimeout)
	v.SetDefault("socialsync_sync_max_posts", defaultSyncMaxPosts)
	v.SetDefault("socialsync_sync_workers", defaultSyncWorkers)
	v.SetDefault("socialsync_default_currency", defaultStoreCurrency)
	v.SetDefault("socialsync_notify_sink", "")
	v.SetDefault("socialsync_notify_source", "socialsync/importer")
	v.SetDefault("socialsync_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "socialsync")
	v.SetDefault("socialsync_version", "dev")
	v.SetDefault("socialsync_otel_sampling_ratio", 1.0)
	v.SetDefault("socialsync_otel_metrics_console", false)

	port := v.GetInt("socialsync_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid SOCIALSYNC_PORT: %d", port)
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	commonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	metricsConsole := v.GetBool("socialsync_otel_metrics_console")

	cfg := Config{
		Environment: resolveEnvironment(v),
		Server: ServerConfig{
			Port:     port,
			APIToken: strings.TrimSpace(v.GetString("socialsync_api_token")),
		},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("socialsync_db_path")),
			LogTiming: v.GetBool("socialsync_db_timing"),
		},
		Webhook: WebhookConfig{
			AppSecret:   strings.TrimSpace(v.GetString("socialsync_webhook_app_secret")),
			VerifyToken: strings.TrimSpace(v.GetString("socialsync_webhook_verify_token")),
		},
		Provider: ProviderConfig{
			GraphBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("socialsync_graph_base_url")), "/"),
			TimeoutMS:    clamp(v.GetInt("socialsync_graph_timeout_ms"), 500, 30000, defaultGraphTimeout),
		},
		Sync: SyncConfig{
			MaxPosts:        clamp(v.GetInt("socialsync_sync_max_posts"), 1, defaultSyncMaxPosts, defaultSyncMaxPosts),
			Workers:         clamp(v.GetInt("socialsync_sync_workers"), 1, 16, defaultSyncWorkers),
			DefaultCurrency: normalizeCurrency(v.GetString("socialsync_default_currency")),
		},
		Notify: NotifyConfig{
			SinkURL: strings.TrimSpace(v.GetString("socialsync_notify_sink")),
			Source:  strings.TrimSpace(v.GetString("socialsync_notify_source")),
		},
		Observability: ObservabilityConfig{
			Enabled:           v.GetBool("socialsync_otel_enabled") || otlpEndpoint != "" || metricsConsole,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))),
			OTLPMetricHeaders: mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))),
			ServiceName:       valueOrDefault(v.GetString("otel_service_name"), "socialsync"),
			ServiceVer:        valueOrDefault(v.GetString("socialsync_version"), "dev"),
			SamplingRatio:     clampRatio(v.GetFloat64("socialsync_otel_sampling_ratio")),
			MetricsConsole:    metricsConsole,
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDBPath
	}
	if cfg.Provider.GraphBaseURL == "" {
		cfg.Provider.GraphBaseURL = defaultGraphBaseURL
	}

	if requireHTTPSecrets && !cfg.IsLocalDevelopment() {
		missing := make([]string, 0, 3)
		if cfg.Webhook.AppSecret == "" {
			missing = append(missing, "SOCIALSYNC_WEBHOOK_APP_SECRET")
		}
		if cfg.Webhook.VerifyToken == "" {
			missing = append(missing, "SOCIALSYNC_WEBHOOK_VERIFY_TOKEN")
		}
		if cfg.Server.APIToken == "" {
			missing = append(missing, "SOCIALSYNC_API_TOKEN")
		}
		if len(missing) > 0 {
			return Config{}, fmt.Errorf("%s required outside local/dev environments", strings.Join(missing, ", "))
		}
	}

	return cfg, nil
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// ProviderTimeout is the per-call deadline for provider API requests.
func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutMS) * time.Millisecond
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"socialsync_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}

func clamp(value, lower, upper, fallback int) int {
	if value <= 0 {
		return fallback
	}
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func clampRatio(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func normalizeCurrency(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != 3 {
		return defaultStoreCurrency
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return defaultStoreCurrency
		}
	}
	return value
}

func valueOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
