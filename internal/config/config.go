package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix namespaces generic overrides. A double underscore separates
// nesting levels: PORTFOLIO_MAIL__EMAILJS__SERVICE_ID -> mail.emailjs.service_id.
const EnvPrefix = "PORTFOLIO_"

// envAliases maps well-known variable names onto config keys. The EmailJS
// names are the ones the site's deployment has always used; the VITE_ forms
// are accepted so an existing .env keeps working.
var envAliases = map[string]string{
	"PORT":     "server.port",
	"GIN_MODE": "server.mode",

	"EMAILJS_SERVICE_ID":       "mail.emailjs.service_id",
	"EMAILJS_TEMPLATE_ID":      "mail.emailjs.template_id",
	"EMAILJS_PUBLIC_KEY":       "mail.emailjs.public_key",
	"EMAILJS_PRIVATE_KEY":      "mail.emailjs.access_token",
	"VITE_EMAILJS_SERVICE_ID":  "mail.emailjs.service_id",
	"VITE_EMAILJS_TEMPLATE_ID": "mail.emailjs.template_id",
	"VITE_EMAILJS_PUBLIC_KEY":  "mail.emailjs.public_key",

	"SMTP_HOST": "mail.smtp.host",
	"SMTP_PORT": "mail.smtp.port",
	"SMTP_USER": "mail.smtp.user",
	"SMTP_PASS": "mail.smtp.password",
	"TO_EMAIL":  "mail.smtp.to",

	"ADMIN_USERNAME": "admin.username",
	"ADMIN_PASSWORD": "admin.password",
}

// Load reads configuration from the given YAML file, then overlays the
// well-known environment aliases and finally PORTFOLIO_* overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// VITE_ forms load first so the plain names override them.
	if err := k.Load(env.Provider("VITE_", ".", func(s string) string {
		return envAliases[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env aliases: %w", err)
	}
	if err := k.Load(env.Provider("", ".", func(s string) string {
		if strings.HasPrefix(s, "VITE_") {
			return ""
		}
		return envAliases[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env aliases: %w", err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Validate checks that the configuration is structurally sound. Missing mail
// credentials are not an error: the site still serves and submissions fail
// with a notification, which the serve command warns about.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if !validModes[c.Server.Mode] {
		errs = append(errs, fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be non-negative"))
	}

	for _, origin := range c.Server.AllowedOrigins {
		if err := checkOrigin(origin); err != nil {
			errs = append(errs, err)
		}
	}

	switch c.Mail.Provider {
	case ProviderEmailJS:
		if c.Mail.EmailJS.Endpoint == "" {
			errs = append(errs, errors.New("mail.emailjs.endpoint is required"))
		}
	case ProviderSMTP:
	default:
		errs = append(errs, fmt.Errorf("invalid mail.provider %q: must be one of emailjs, smtp", c.Mail.Provider))
	}

	if c.Analytics.Enabled {
		if c.Analytics.DBPath == "" {
			errs = append(errs, errors.New("analytics.db_path is required when analytics are enabled"))
		}
		if c.Analytics.Retention <= 0 {
			errs = append(errs, errors.New("analytics.retention must be positive"))
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

func checkOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.Path != "" {
		return fmt.Errorf("server.allowed_origins: %q must be an http(s) origin such as https://me.github.io", origin)
	}
	return nil
}
