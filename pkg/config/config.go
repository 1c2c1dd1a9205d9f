// Package config reads the site configuration from the environment.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Keys double as environment variable names once upper-cased.
const (
	KeyPort            = "port"
	KeyGinMode         = "gin_mode"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyDataPath        = "portfolio_data"
	KeyCVCacheSize     = "cv_cache_size"
	KeyCORSOrigins     = "cors_origins"
	KeyOTLPEndpoint    = "otel_exporter_otlp_endpoint"
	KeyOTLPHeaders     = "otel_exporter_otlp_headers"
	KeyServiceName     = "otel_service_name"
	KeyShutdownTimeout = "shutdown_timeout"
	KeySMTPHost        = "smtp_host"
	KeySMTPPort        = "smtp_port"
	KeySMTPUser        = "smtp_user"
	KeySMTPPass        = "smtp_pass"
	KeyContactTo       = "to_email"
)

// SMTP holds the mail settings for the contact form.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are present.
func (s SMTP) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

// Config is the resolved configuration.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	DataPath        string
	CVCacheSize     int
	CORSOrigins     []string
	OTLPEndpoint    string
	OTLPHeaders     string
	ServiceName     string
	ShutdownTimeout time.Duration
	SMTP            SMTP
}

// New returns a viper instance with defaults set and environment binding on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyDataPath, "")
	v.SetDefault(KeyCVCacheSize, 8)
	v.SetDefault(KeyCORSOrigins, "")
	v.SetDefault(KeyOTLPEndpoint, "")
	v.SetDefault(KeyOTLPHeaders, "")
	v.SetDefault(KeyServiceName, "portfolio")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeySMTPHost, "smtp.gmail.com")
	v.SetDefault(KeySMTPPort, "587")
	v.SetDefault(KeySMTPUser, "")
	v.SetDefault(KeySMTPPass, "")
	v.SetDefault(KeyContactTo, "")
	v.AutomaticEnv()
	return v
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (cfg Config, err error) {
	cfg = Config{
		Port:            strings.TrimSpace(v.GetString(KeyPort)),
		GinMode:         strings.ToLower(v.GetString(KeyGinMode)),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       strings.ToLower(v.GetString(KeyLogFormat)),
		DataPath:        v.GetString(KeyDataPath),
		CVCacheSize:     v.GetInt(KeyCVCacheSize),
		CORSOrigins:     splitList(v.GetString(KeyCORSOrigins)),
		OTLPEndpoint:    v.GetString(KeyOTLPEndpoint),
		OTLPHeaders:     v.GetString(KeyOTLPHeaders),
		ServiceName:     v.GetString(KeyServiceName),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
		SMTP: SMTP{
			Host: v.GetString(KeySMTPHost),
			Port: v.GetString(KeySMTPPort),
			User: v.GetString(KeySMTPUser),
			Pass: v.GetString(KeySMTPPass),
			To:   v.GetString(KeyContactTo),
		},
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid configuration")
		return cfg, err
	}
	return cfg, err
}

// Validate checks value ranges.
func (c Config) Validate() (err error) {
	port, convErr := strconv.Atoi(c.Port)
	if convErr != nil || port < 1 || port > 65535 {
		err = errors.Errorf("port must be a number between 1 and 65535, got %q", c.Port)
		return err
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		err = errors.Errorf("gin mode must be debug, release or test, got %q", c.GinMode)
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		err = errors.Errorf("log format must be text or json, got %q", c.LogFormat)
		return err
	}

	if c.CVCacheSize < 1 {
		err = errors.Errorf("cv cache size must be at least 1, got %d", c.CVCacheSize)
		return err
	}

	if c.ShutdownTimeout <= 0 {
		err = errors.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
		return err
	}

	return err
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) (items []string) {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
