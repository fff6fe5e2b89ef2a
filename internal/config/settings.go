package config

import (
	"fmt"
	"net/url"
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Sandbox
	Staging
	Production
)

const (
	SourceKindHTTP     = "http"
	SourceKindPostgres = "postgres"
	SourceKindFixture  = "fixture"
)

type (
	ServiceConfig struct {
		App                   App                   `json:"app"`
		SecretsStorage        SecretsStorage        `json:"secrets_storage"`
		PublicHTTPServer      PublicHTTPServer      `json:"public_http_server"`
		AdminHTTPServer       AdminHTTPServer       `json:"admin_http_server"`
		GRPCHealthServer      GRPCHealthServer      `json:"grpc_health_server"`
		Auth                  Auth                  `json:"auth"`
		Source                Source                `json:"source"`
		Postgres              Postgres              `json:"postgres"`
		Backoff               Backoff               `json:"backoff"`
		CircuitBreaker        CircuitBreaker        `json:"circuit_breaker"`
		Cache                 Cache                 `json:"cache"`
		RecordsCache          RecordsCache          `json:"records_cache"`
		Table                 Table                 `json:"table"`
		Sessions              Sessions              `json:"sessions"`
		ThrottledRateLimiting ThrottledRateLimiting `json:"throttled_rate_limiting"`
		Idempotency           Idempotency           `json:"idempotency"`
		Compression           Compression           `json:"compression"`
		Logging               Logging               `json:"logging"`
		Telemetry             Telemetry             `json:"telemetry"`
	}

	App struct {
		ServiceName string      `envconfig:"APP_SERVICE_NAME" default:"datatable" json:"service_name"`
		APIVersion  string      `envconfig:"APP_API_VERSION" default:"v1" json:"api_version"`
		Env         Environment `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENVIRONMENT" default:"development" json:"env"`
	}

	SecretsStorage struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" default:"" json:"-"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"-"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"-"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"datatable" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    uint          `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
		PollInterval  time.Duration `envconfig:"VAULT_POLL_INTERVAL" default:"24h" json:"poll_interval"`
	}

	PublicHTTPServer struct {
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"HTTP_SERVER_PORT" default:"8080" json:"port"`
		ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
		AllowedOrigins  []string      `envconfig:"HTTP_ALLOWED_ORIGINS" default:"*" json:"allowed_origins"`
	}

	AdminHTTPServer struct {
		Enabled         bool          `envconfig:"ADMIN_HTTP_SERVER_ENABLED" default:"true" json:"enabled"`
		Host            string        `envconfig:"ADMIN_HTTP_SERVER_HOST" default:"127.0.0.1" json:"host"`
		Port            uint          `envconfig:"ADMIN_HTTP_SERVER_PORT" default:"8081" json:"port"`
		ReadTimeout     time.Duration `envconfig:"ADMIN_HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"ADMIN_HTTP_WRITE_TIMEOUT" default:"15s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"ADMIN_HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"ADMIN_HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	GRPCHealthServer struct {
		Enabled       bool          `envconfig:"GRPC_HEALTH_ENABLED" default:"true" json:"enabled"`
		Host          string        `envconfig:"GRPC_HEALTH_HOST" default:"0.0.0.0" json:"host"`
		Port          uint          `envconfig:"GRPC_HEALTH_PORT" default:"9090" json:"port"`
		CheckInterval time.Duration `envconfig:"GRPC_HEALTH_CHECK_INTERVAL" default:"10s" json:"check_interval"`
	}

	Auth struct {
		Enabled      bool     `envconfig:"AUTH_ENABLED" default:"false" json:"enabled"`
		SecretKey    string   `envconfig:"AUTH_SECRET_KEY" default:"" json:"-"`
		ValidIssuers []string `envconfig:"AUTH_VALID_ISSUERS" default:"datatable,auth-service" json:"valid_issuers"`
		SkipPaths    []string `envconfig:"AUTH_SKIP_PATHS" default:"" json:"skip_paths"`
	}

	// Source selects where table records come from.
	Source struct {
		Kind        string        `envconfig:"SOURCE_KIND" default:"http" json:"kind"`
		BaseURL     string        `envconfig:"SOURCE_BASE_URL" default:"https://jsonplaceholder.typicode.com" json:"base_url"`
		Timeout     time.Duration `envconfig:"SOURCE_TIMEOUT" default:"10s" json:"timeout"`
		FixturePath string        `envconfig:"SOURCE_FIXTURE_PATH" default:"" json:"fixture_path"`
	}

	Postgres struct {
		Host            string        `envconfig:"DB_HOST" default:"postgres" json:"host"`
		Port            uint          `envconfig:"DB_PORT" default:"5432" json:"port"`
		Username        string        `envconfig:"DB_USERNAME" default:"datatable" json:"username"`
		Password        string        `envconfig:"DB_PASSWORD" default:"" json:"-"`
		Database        string        `envconfig:"DB_NAME" default:"datatable" json:"database"`
		SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable" json:"ssl_mode"`
		MaxConnections  uint          `envconfig:"DB_MAX_CONNECTIONS" default:"10" json:"max_connections"`
		MinConnections  uint          `envconfig:"DB_MIN_CONNECTIONS" default:"2" json:"min_connections"`
		MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h" json:"max_conn_lifetime"`
		MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m" json:"max_conn_idle_time"`
		ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s" json:"connect_timeout"`
		MigrateOnStart  bool          `envconfig:"DB_MIGRATE_ON_START" default:"false" json:"migrate_on_start"`
	}

	// Backoff drives retries of outbound source calls. MaxRetries 0 means a single attempt.
	Backoff struct {
		MaxRetries uint          `envconfig:"BACKOFF_MAX_RETRIES" default:"0" json:"max_retries"`
		BaseDelay  time.Duration `envconfig:"BACKOFF_BASE_DELAY" default:"200ms" json:"base_delay"`
		Multiplier float64       `envconfig:"BACKOFF_MULTIPLIER" default:"1.5" json:"multiplier"`
		Jitter     float64       `envconfig:"BACKOFF_JITTER" default:"0.3" json:"jitter"`
		MaxDelay   time.Duration `envconfig:"BACKOFF_MAX_DELAY" default:"5s" json:"max_delay"`
	}

	CircuitBreaker struct {
		Enabled          bool          `envconfig:"SOURCE_CB_ENABLED" default:"true" json:"enabled"`
		MaxRequests      uint          `envconfig:"SOURCE_CB_MAX_REQUESTS" default:"1" json:"max_requests"`
		Interval         time.Duration `envconfig:"SOURCE_CB_INTERVAL" default:"60s" json:"interval"`
		Timeout          time.Duration `envconfig:"SOURCE_CB_TIMEOUT" default:"30s" json:"timeout"`
		FailureThreshold uint          `envconfig:"SOURCE_CB_FAILURE_THRESHOLD" default:"5" json:"failure_threshold"`
	}

	Cache struct {
		Enabled       bool          `envconfig:"CACHE_ENABLED" default:"true" json:"enabled"`
		Address       string        `envconfig:"CACHE_ADDRESS" default:"keydb:6379" json:"address"`
		Password      string        `envconfig:"CACHE_PASSWORD" default:"" json:"-"`
		DB            uint          `envconfig:"CACHE_DB" default:"0" json:"db"`
		PoolSize      uint          `envconfig:"CACHE_POOL_SIZE" default:"10" json:"pool_size"`
		MinIdleConns  uint          `envconfig:"CACHE_MIN_IDLE_CONNS" default:"3" json:"min_idle_conns"`
		DialTimeout   time.Duration `envconfig:"CACHE_DIAL_TIMEOUT" default:"5s" json:"dial_timeout"`
		ReadTimeout   time.Duration `envconfig:"CACHE_READ_TIMEOUT" default:"3s" json:"read_timeout"`
		WriteTimeout  time.Duration `envconfig:"CACHE_WRITE_TIMEOUT" default:"3s" json:"write_timeout"`
		PoolTimeout   time.Duration `envconfig:"CACHE_POOL_TIMEOUT" default:"5s" json:"pool_timeout"`
		MaxRetries    uint          `envconfig:"CACHE_MAX_RETRIES" default:"3" json:"max_retries"`
		DefaultExpiry time.Duration `envconfig:"CACHE_DEFAULT_EXPIRY" default:"24h" json:"default_expiry"`
	}

	RecordsCache struct {
		Enabled bool          `envconfig:"RECORDS_CACHE_ENABLED" default:"true" json:"enabled"`
		TTL     time.Duration `envconfig:"RECORDS_CACHE_TTL" default:"1m" json:"ttl"`
		MaxAge  uint          `envconfig:"RECORDS_CACHE_MAX_AGE" default:"30" json:"max_age"`
	}

	Table struct {
		DefaultPageSize int           `envconfig:"TABLE_DEFAULT_PAGE_SIZE" default:"10" json:"default_page_size"`
		PageSizes       []int         `envconfig:"TABLE_PAGE_SIZES" default:"10,20,50" json:"page_sizes"`
		FetchTimeout    time.Duration `envconfig:"TABLE_FETCH_TIMEOUT" default:"15s" json:"fetch_timeout"`
		ExportLimit     int           `envconfig:"TABLE_EXPORT_LIMIT" default:"10000" json:"export_limit"`
	}

	Sessions struct {
		MaxSessions int           `envconfig:"SESSIONS_MAX" default:"1000" json:"max_sessions"`
		TTL         time.Duration `envconfig:"SESSIONS_TTL" default:"30m" json:"ttl"`
	}

	ThrottledRateLimiting struct {
		Enabled           bool     `envconfig:"RATE_LIMITING_ENABLED" default:"true" json:"enabled"`
		RequestsPerSecond uint     `envconfig:"RATE_LIMITING_REQUESTS_PER_SECOND" default:"10" json:"requests_per_second"`
		BurstSize         uint     `envconfig:"RATE_LIMITING_BURST_SIZE" default:"20" json:"burst_size"`
		EnableIPLimiting  bool     `envconfig:"RATE_LIMITING_ENABLE_IP" default:"true" json:"enable_ip_limiting"`
		SkipPaths         []string `envconfig:"RATE_LIMITING_SKIP_PATHS" default:"" json:"skip_paths"`
		GracefulDegraded  bool     `envconfig:"RATE_LIMITING_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	Idempotency struct {
		Enabled          bool          `envconfig:"IDEMPOTENCY_ENABLED" default:"true" json:"enabled"`
		CacheTTL         time.Duration `envconfig:"IDEMPOTENCY_CACHE_TTL" default:"24h" json:"cache_ttl"`
		LockTTL          time.Duration `envconfig:"IDEMPOTENCY_LOCK_TTL" default:"30s" json:"lock_ttl"`
		RequiredMethods  []string      `envconfig:"IDEMPOTENCY_REQUIRED_METHODS" default:"POST" json:"required_methods"`
		HeaderName       string        `envconfig:"IDEMPOTENCY_HEADER" default:"Idempotency-Key" json:"header_name"`
		ReplayedHeader   string        `envconfig:"IDEMPOTENCY_REPLAYED_HEADER" default:"Idempotent-Replayed" json:"replayed_header"`
		GracefulDegraded bool          `envconfig:"IDEMPOTENCY_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	Compression struct {
		Enabled bool `envconfig:"COMPRESSION_ENABLED" default:"true" json:"enabled"`

		// Level is 1-9; higher compresses better at more CPU.
		Level int `envconfig:"COMPRESSION_LEVEL" default:"5" json:"level"`

		// MinSize is the smallest body, in bytes, worth compressing.
		MinSize int `envconfig:"COMPRESSION_MIN_SIZE" default:"1024" json:"min_size"`

		ContentTypes []string `envconfig:"COMPRESSION_CONTENT_TYPES" json:"content_types"`
		SkipPaths    []string `envconfig:"COMPRESSION_SKIP_PATHS" default:"" json:"skip_paths"`
	}

	Logging struct {
		Level     string    `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format    string    `envconfig:"LOG_FORMAT" default:"json" json:"format"`
		AccessLog AccessLog `json:"access_log"`
	}

	AccessLog struct {
		Enabled            bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		IncludeQueryParams bool `envconfig:"ACCESS_LOG_INCLUDE_QUERY_PARAMS" default:"true" json:"include_query_params"`
	}

	Telemetry struct {
		ExporterType string `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`

		OtelGRPCHost       string `envconfig:"OTEL_HOST" json:"otel_grpc_host"`
		OtelGRPCPort       string `envconfig:"OTEL_PORT" default:"4317" json:"otel_grpc_port"`
		OtelProductCluster string `envconfig:"OTEL_PRODUCT_CLUSTER" json:"otel_product_cluster"`

		Metrics Metrics `json:"metrics"`
		Traces  Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true" json:"enabled"`
		Namespace string `envconfig:"METRICS_NAMESPACE" default:"datatable" json:"namespace"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	case "sandbox", "sbx":
		return Sandbox
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

// Validate checks the settings envconfig cannot express as tags.
func (c *ServiceConfig) Validate() error {
	switch c.Source.Kind {
	case SourceKindHTTP, SourceKindPostgres:
	case SourceKindFixture:
		if c.Source.FixturePath == "" {
			return fmt.Errorf("source kind %q requires SOURCE_FIXTURE_PATH", SourceKindFixture)
		}
	default:
		return fmt.Errorf("unsupported source kind %q", c.Source.Kind)
	}

	if len(c.Table.PageSizes) == 0 {
		return fmt.Errorf("table page sizes must not be empty")
	}

	for _, size := range c.Table.PageSizes {
		if size <= 0 {
			return fmt.Errorf("table page size must be positive, got %d", size)
		}
	}

	if c.Auth.Enabled && c.Auth.SecretKey == "" {
		return fmt.Errorf("auth is enabled but AUTH_SECRET_KEY is empty")
	}

	return c.Compression.Validate()
}

func (c *Compression) Validate() error {
	if c.Level < 1 || c.Level > 9 {
		return fmt.Errorf("compression level must be between 1 and 9, got %d", c.Level)
	}

	if c.MinSize < 0 {
		return fmt.Errorf("compression min_size must be non-negative, got %d", c.MinSize)
	}

	return nil
}

// ConnString renders the connection URL with the given scheme ("postgres" for
// pgx, "pgx5" for migrate).
func (p Postgres) ConnString(scheme string) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s:%d/%s?sslmode=%s",
		scheme,
		url.QueryEscape(p.Username),
		url.QueryEscape(p.Password),
		p.Host,
		p.Port,
		p.Database,
		p.SSLMode,
	)
}
