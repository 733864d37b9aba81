package config

import (
	"time"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
)

// DefaultConfigFile is read when --config is not given.
const DefaultConfigFile = "portfolio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Mail: MailConfig{
			Provider: ProviderEmailJS,
			EmailJS: EmailJSConfig{
				Endpoint: contact.DefaultEmailJSEndpoint,
				Timeout:  30 * time.Second,
			},
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: "587",
			},
		},
		Analytics: AnalyticsConfig{
			DBPath:    "data/portfolio.db",
			Retention: 365 * 24 * time.Hour,
			QueueSize: 256,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
