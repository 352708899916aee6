package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "pricing-engine", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "memory", cfg.Cache.Driver)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "pricing:totals:", cfg.Cache.KeyPrefix)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, int32(2), cfg.Pricing.CurrencyPlaces)
		assert.Equal(t, "1", cfg.Pricing.DefaultQuantity.String())
		assert.True(t, cfg.HTTP.TracingEnabled)
		assert.True(t, cfg.HTTP.SwaggerEnabled)
		assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "localhost:4317", cfg.Telemetry.CollectorEndpoint)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)

		require.Len(t, cfg.Pricing.TaxRates, 1)
		assert.Equal(t, "GST", cfg.Pricing.TaxRates[0].Name)
		assert.Equal(t, "18", cfg.Pricing.TaxRates[0].Percent.String())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PRICING_APP_PORT", "9090")
		t.Setenv("PRICING_CACHE_DRIVER", "Redis")
		t.Setenv("PRICING_CACHE_TTL", "30s")
		t.Setenv("PRICING_REDIS_HOST", "cache.internal")
		t.Setenv("PRICING_PRICING_CURRENCY_PLACES", "0")
		t.Setenv("PRICING_PRICING_TAX_RATES", "GST=18,VAT=5.5")
		t.Setenv("PRICING_HTTP_TRACING_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "redis", cfg.Cache.Driver)
		assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
		assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
		assert.Equal(t, int32(0), cfg.Pricing.CurrencyPlaces)
		assert.False(t, cfg.HTTP.TracingEnabled)

		require.Len(t, cfg.Pricing.TaxRates, 2)
		assert.Equal(t, "VAT", cfg.Pricing.TaxRates[1].Name)
		assert.Equal(t, "5.5", cfg.Pricing.TaxRates[1].Percent.String())

		catalog, err := cfg.TaxCatalog()
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
	})

	t.Run("swagger defaults off in production", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PRICING_APP_ENV", "production")
		t.Setenv("PRICING_HTTP_SWAGGER_ALLOW_IPS", "10.0.0.0/8, 127.0.0.1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.HTTP.SwaggerEnabled)
		assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.HTTP.SwaggerAllowIPs)
	})

	t.Run("config file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		content := `
[app]
name = "pricing-test"

[cache]
driver = "none"

[pricing]
currency_places = 3
default_quantity = "2"
tax_rates = ["GST=18", "CESS=1"]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "pricing-test", cfg.App.Name)
		assert.Equal(t, "none", cfg.Cache.Driver)
		assert.Equal(t, int32(3), cfg.Pricing.CurrencyPlaces)
		assert.Equal(t, "2", cfg.Pricing.DefaultQuantity.String())
		assert.Len(t, cfg.Pricing.TaxRates, 2)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"unknown cache driver", map[string]string{"PRICING_CACHE_DRIVER": "memcached"}, "cache.driver"},
		{"currency places out of range", map[string]string{"PRICING_PRICING_CURRENCY_PLACES": "12"}, "currency_places"},
		{"malformed tax rate", map[string]string{"PRICING_PRICING_TAX_RATES": "GST"}, "pricing.tax_rates"},
		{"duplicate tax rate", map[string]string{"PRICING_PRICING_TAX_RATES": "GST=18,gst=5"}, "pricing.tax_rates"},
		{"negative default quantity", map[string]string{"PRICING_PRICING_DEFAULT_QUANTITY": "-1"}, "default_quantity"},
		{"bad default quantity", map[string]string{"PRICING_PRICING_DEFAULT_QUANTITY": "one"}, "default_quantity"},
		{"sampling ratio above 1", map[string]string{"PRICING_TELEMETRY_SAMPLING_RATIO": "1.5"}, "sampling_ratio"},
		{"wildcard cors in production", map[string]string{"PRICING_APP_ENV": "production", "PRICING_HTTP_CORS_ALLOW_ORIGINS": "*"}, "cors_allow_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.toml")
		require.NoError(t, os.WriteFile(path, []byte("[redis]\nport = 6380\n"), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	})
}
