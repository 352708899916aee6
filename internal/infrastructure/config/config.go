package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "PRICING"

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Pricing   PricingConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	ShutdownTimeout  time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	TrustedProxies   []string
	TracingEnabled   bool
	SwaggerEnabled   bool
	SwaggerAllowIPs  []string // IPs or CIDRs; empty allows every client
}

// CacheConfig selects and tunes the totals memoization cache
type CacheConfig struct {
	Driver          string // memory, redis, none
	TTL             time.Duration
	CleanupInterval time.Duration
	KeyPrefix       string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns the host:port address
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TelemetryConfig holds OpenTelemetry export settings
type TelemetryConfig struct {
	Enabled               bool
	CollectorEndpoint     string
	SamplingRatio         float64
	Insecure              bool
	MetricsEnabled        bool
	MetricsExportInterval time.Duration
}

// PricingConfig holds engine parameters
type PricingConfig struct {
	CurrencyPlaces  int32
	DefaultQuantity decimal.Decimal
	TaxRates        []pricing.TaxRate
}

// Load reads config.toml from the working directory or /app and applies
// environment overrides with the PRICING_ prefix (PRICING_CACHE_DRIVER,
// PRICING_PRICING_TAX_RATES, ...). A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return build(v)
}

// LoadFile reads configuration from an explicit file path
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			ShutdownTimeout:  v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: splitList(v.GetStringSlice("http.cors_allow_origins")),
			TrustedProxies:   splitList(v.GetStringSlice("http.trusted_proxies")),
			TracingEnabled:   v.GetBool("http.tracing_enabled"),
			SwaggerEnabled:   v.GetBool("http.swagger_enabled"),
			SwaggerAllowIPs:  splitList(v.GetStringSlice("http.swagger_allow_ips")),
		},
		Cache: CacheConfig{
			Driver:          strings.ToLower(v.GetString("cache.driver")),
			TTL:             v.GetDuration("cache.ttl"),
			CleanupInterval: v.GetDuration("cache.cleanup_interval"),
			KeyPrefix:       v.GetString("cache.key_prefix"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Pricing: PricingConfig{
			CurrencyPlaces: v.GetInt32("pricing.currency_places"),
		},
		Telemetry: TelemetryConfig{
			Enabled:               v.GetBool("telemetry.enabled"),
			CollectorEndpoint:     v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:         v.GetFloat64("telemetry.sampling_ratio"),
			Insecure:              v.GetBool("telemetry.insecure"),
			MetricsEnabled:        v.GetBool("telemetry.metrics_enabled"),
			MetricsExportInterval: v.GetDuration("telemetry.metrics_export_interval"),
		},
	}

	if raw := v.GetString("pricing.default_quantity"); raw != "" {
		q, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("pricing.default_quantity: %w", err)
		}
		cfg.Pricing.DefaultQuantity = q
	}

	specs := splitList(v.GetStringSlice("pricing.tax_rates"))
	if !v.IsSet("pricing.tax_rates") {
		specs = []string{"GST=18"}
	}
	for _, spec := range specs {
		rate, err := pricing.ParseTaxRateSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("pricing.tax_rates: %w", err)
		}
		cfg.Pricing.TaxRates = append(cfg.Pricing.TaxRates, rate)
	}

	applyDefaults(cfg, v)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList flattens comma separated entries; env values arrive as one string
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config, v *viper.Viper) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pricing-engine"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	if !v.IsSet("http.tracing_enabled") {
		cfg.HTTP.TracingEnabled = true
	}
	// API docs are served outside production unless configured explicitly
	if !v.IsSet("http.swagger_enabled") {
		cfg.HTTP.SwaggerEnabled = cfg.App.Env != "production"
	}
	if cfg.Cache.Driver == "" {
		cfg.Cache.Driver = "memory"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 10 * time.Minute
	}
	if cfg.Cache.CleanupInterval == 0 {
		cfg.Cache.CleanupInterval = 5 * time.Minute
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = "pricing:totals:"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if !v.IsSet("pricing.currency_places") {
		cfg.Pricing.CurrencyPlaces = pricing.DefaultCurrencyPlaces
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if !v.IsSet("telemetry.sampling_ratio") {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.MetricsExportInterval == 0 {
		cfg.Telemetry.MetricsExportInterval = 60 * time.Second
	}
	if cfg.Pricing.DefaultQuantity.IsZero() {
		cfg.Pricing.DefaultQuantity = pricing.DefaultQuantity
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("cache.driver must be one of memory, redis, none; got %q", c.Cache.Driver)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl cannot be negative")
	}
	if c.Pricing.CurrencyPlaces < 0 || c.Pricing.CurrencyPlaces > 8 {
		return fmt.Errorf("pricing.currency_places must be between 0 and 8, got %d", c.Pricing.CurrencyPlaces)
	}
	if c.Pricing.DefaultQuantity.IsNegative() {
		return fmt.Errorf("pricing.default_quantity cannot be negative")
	}
	if _, err := pricing.NewTaxCatalog(c.Pricing.TaxRates...); err != nil {
		return fmt.Errorf("pricing.tax_rates: %w", err)
	}
	if c.Telemetry.SamplingRatio < 0 || c.Telemetry.SamplingRatio > 1 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0 and 1, got %v", c.Telemetry.SamplingRatio)
	}
	if c.HTTP.MaxBodySize <= 0 {
		return fmt.Errorf("http.max_body_size must be positive")
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("http.cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}
	return nil
}

// TaxCatalog builds the tax catalog from the configured rates
func (c *Config) TaxCatalog() (*pricing.TaxCatalog, error) {
	return pricing.NewTaxCatalog(c.Pricing.TaxRates...)
}
