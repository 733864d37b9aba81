package config

import (
	"fmt"
	"time"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
)

// MailProvider selects how contact submissions are delivered.
type MailProvider string

const (
	ProviderEmailJS MailProvider = "emailjs"
	ProviderSMTP    MailProvider = "smtp"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server" yaml:"server"`
	Mail      MailConfig      `koanf:"mail" yaml:"mail"`
	Analytics AnalyticsConfig `koanf:"analytics" yaml:"analytics"`
	Admin     AdminConfig     `koanf:"admin" yaml:"admin"`
	Content   ContentConfig   `koanf:"content" yaml:"content"`
	Log       LogConfig       `koanf:"log" yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `koanf:"host" yaml:"host"`
	Port int    `koanf:"port" yaml:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode            string        `koanf:"mode" yaml:"mode"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
	// AllowedOrigins may post the contact form cross-origin, for example a
	// statically exported copy of the site. "*" allows any origin.
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MailConfig selects and configures the email provider.
type MailConfig struct {
	Provider MailProvider  `koanf:"provider" yaml:"provider"`
	EmailJS  EmailJSConfig `koanf:"emailjs" yaml:"emailjs"`
	SMTP     SMTPConfig    `koanf:"smtp" yaml:"smtp"`
}

// EmailJSConfig holds the three deployment identifiers plus transport knobs.
type EmailJSConfig struct {
	Endpoint    string        `koanf:"endpoint" yaml:"endpoint"`
	ServiceID   string        `koanf:"service_id" yaml:"service_id"`
	TemplateID  string        `koanf:"template_id" yaml:"template_id"`
	PublicKey   string        `koanf:"public_key" yaml:"public_key"`
	AccessToken string        `koanf:"access_token" yaml:"access_token"`
	Timeout     time.Duration `koanf:"timeout" yaml:"timeout"`
}

// SMTPConfig configures a mail relay.
type SMTPConfig struct {
	Host     string `koanf:"host" yaml:"host"`
	Port     string `koanf:"port" yaml:"port"`
	User     string `koanf:"user" yaml:"user"`
	Password string `koanf:"password" yaml:"password"`
	To       string `koanf:"to" yaml:"to"`
}

// AnalyticsConfig controls visitor tracking.
type AnalyticsConfig struct {
	Enabled   bool          `koanf:"enabled" yaml:"enabled"`
	DBPath    string        `koanf:"db_path" yaml:"db_path"`
	Retention time.Duration `koanf:"retention" yaml:"retention"`
	QueueSize int           `koanf:"queue_size" yaml:"queue_size"`
	// Salt keys the visitor IP hash. Empty means a random salt per process,
	// which makes unique-visitor counts restart with the server.
	Salt string `koanf:"salt" yaml:"salt"`
}

// AdminConfig holds the dashboard credentials.
type AdminConfig struct {
	Username string `koanf:"username" yaml:"username"`
	Password string `koanf:"password" yaml:"password"`
}

// Enabled reports whether the admin dashboard can be served.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

// ContentConfig points at an optional YAML content override.
type ContentConfig struct {
	Path string `koanf:"path" yaml:"path"`
}

// LogConfig controls zap.
type LogConfig struct {
	Level       string `koanf:"level" yaml:"level"`
	Development bool   `koanf:"development" yaml:"development"`
}

// ContactEmailJS converts to the sender's configuration.
func (c EmailJSConfig) ContactEmailJS() contact.EmailJSConfig {
	return contact.EmailJSConfig{
		Endpoint:    c.Endpoint,
		ServiceID:   c.ServiceID,
		TemplateID:  c.TemplateID,
		PublicKey:   c.PublicKey,
		AccessToken: c.AccessToken,
		Timeout:     c.Timeout,
	}
}

// ContactSMTP converts to the sender's configuration.
func (c SMTPConfig) ContactSMTP() contact.SMTPConfig {
	return contact.SMTPConfig{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		To:       c.To,
	}
}

// Configured reports whether the selected provider has its credentials.
func (m MailConfig) Configured() bool {
	switch m.Provider {
	case ProviderSMTP:
		return m.SMTP.ContactSMTP().Configured()
	default:
		return m.EmailJS.ContactEmailJS().Configured()
	}
}

// Sender builds the contact sender for the selected provider.
func (m MailConfig) Sender() contact.Sender {
	if m.Provider == ProviderSMTP {
		return contact.NewSMTP(m.SMTP.ContactSMTP())
	}
	return contact.NewEmailJS(m.EmailJS.ContactEmailJS())
}
