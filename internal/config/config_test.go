package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeFile(t, `
server:
  port: 9000
  mode: debug
mail:
  emailjs:
    service_id: from_file
    template_id: template_file
analytics:
  enabled: true
  retention: 720h
  salt: pepper
`)
	t.Setenv("EMAILJS_SERVICE_ID", "service_env")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pk_env")
	t.Setenv("PORTFOLIO_SERVER__PORT", "9100")
	t.Setenv("PORTFOLIO_ANALYTICS__DB_PATH", "/tmp/x.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "prefixed env beats file")
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "service_env", cfg.Mail.EmailJS.ServiceID, "alias beats file")
	assert.Equal(t, "template_file", cfg.Mail.EmailJS.TemplateID)
	assert.Equal(t, "pk_env", cfg.Mail.EmailJS.PublicKey)
	assert.True(t, cfg.Analytics.Enabled)
	assert.Equal(t, 720*time.Hour, cfg.Analytics.Retention)
	assert.Equal(t, "/tmp/x.db", cfg.Analytics.DBPath)
	assert.Equal(t, "pepper", cfg.Analytics.Salt)
	assert.True(t, cfg.Mail.Configured())
}

func TestLoadViteAliases(t *testing.T) {
	t.Setenv("VITE_EMAILJS_SERVICE_ID", "vite_service")
	t.Setenv("VITE_EMAILJS_TEMPLATE_ID", "vite_template")
	t.Setenv("VITE_EMAILJS_PUBLIC_KEY", "vite_key")
	t.Setenv("EMAILJS_PUBLIC_KEY", "plain_key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "vite_service", cfg.Mail.EmailJS.ServiceID)
	assert.Equal(t, "vite_template", cfg.Mail.EmailJS.TemplateID)
	assert.Equal(t, "plain_key", cfg.Mail.EmailJS.PublicKey)
}

func TestLoadSMTPAndAdminEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("PORTFOLIO_MAIL__PROVIDER", "smtp")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, ProviderSMTP, cfg.Mail.Provider)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTP.Host)
	assert.True(t, cfg.Mail.Configured())
	assert.True(t, cfg.Admin.Enabled())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "server: [unterminated\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "out of range"},
		{name: "bad mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "server.mode"},
		{name: "allowed origins", mutate: func(c *Config) { c.Server.AllowedOrigins = []string{"https://me.github.io", "*"} }},
		{name: "origin with path", mutate: func(c *Config) { c.Server.AllowedOrigins = []string{"https://me.github.io/portfolio"} }, wantErr: "allowed_origins"},
		{name: "origin without scheme", mutate: func(c *Config) { c.Server.AllowedOrigins = []string{"me.github.io"} }, wantErr: "allowed_origins"},
		{name: "bad provider", mutate: func(c *Config) { c.Mail.Provider = "sendgrid" }, wantErr: "mail.provider"},
		{name: "no endpoint", mutate: func(c *Config) { c.Mail.EmailJS.Endpoint = "" }, wantErr: "endpoint"},
		{
			name:    "analytics without path",
			mutate:  func(c *Config) { c.Analytics.Enabled = true; c.Analytics.DBPath = "" },
			wantErr: "db_path",
		},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 4242
	cfg.Mail.EmailJS.ServiceID = "svc"

	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4242, loaded.Server.Port)
	assert.Equal(t, "svc", loaded.Mail.EmailJS.ServiceID)
}

func TestMailSender(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Mail.Configured())
	assert.NotNil(t, cfg.Mail.Sender())

	cfg.Mail.Provider = ProviderSMTP
	assert.NotNil(t, cfg.Mail.Sender())
}
