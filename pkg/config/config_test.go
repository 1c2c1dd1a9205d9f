package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "PORTFOLIO_DATA", "CV_CACHE_SIZE", "CORS_ORIGINS", "SMTP_USER", "SMTP_PASS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 8, cfg.CVCacheSize)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "portfolio", cfg.ServiceName)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PORTFOLIO_DATA", "/etc/portfolio.yaml")
	t.Setenv("CV_CACHE_SIZE", "2")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/portfolio.yaml", cfg.DataPath)
	assert.Equal(t, 2, cfg.CVCacheSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "http://collector:4318", cfg.OTLPEndpoint)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestLoadOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	v := New()
	v.Set(KeyPort, "7070")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "8080", GinMode: "release", LogFormat: "text", CVCacheSize: 8, ShutdownTimeout: time.Second}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "non numeric port", mutate: func(c *Config) { c.Port = "http" }},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }},
		{name: "unknown gin mode", mutate: func(c *Config) { c.GinMode = "prod" }},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "empty cache", mutate: func(c *Config) { c.CVCacheSize = 0 }},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
