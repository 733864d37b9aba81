package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Itsme-Debapriya/portfolio/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		verbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yml")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio dev\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--config", missingConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "config:    ok")
	assert.Contains(t, out, "content:   ok")
}

func TestCheckRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  mode: loud\n"), 0o600))

	_, err := run(t, "check", "--config", path)
	assert.ErrorContains(t, err, "server.mode")
}

func TestCheckRejectsBadContent(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "content.yml")
	require.NoError(t, os.WriteFile(contentPath, []byte("projects: []\n"), 0o600))
	cfgPath := filepath.Join(dir, "portfolio.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("content:\n  path: "+contentPath+"\n"), 0o600))

	_, err := run(t, "check", "--config", cfgPath)
	assert.ErrorContains(t, err, "invalid content")
}

func TestContentDump(t *testing.T) {
	out, err := run(t, "content", "--config", missingConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "profile:")
	assert.Contains(t, out, "projects:")
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	out, err := run(t, "export", "--config", missingConfig(t), "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 pages, 2 assets")
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "static", "app.js"))
}

func TestOpenAnalyticsUsesConfiguredSalt(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Analytics.Enabled = true
	cfg.Analytics.Salt = "pepper"

	hashes := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		cfg.Analytics.DBPath = filepath.Join(dir, "data", "run"+strconv.Itoa(i)+".db")
		st, tracker, err := openAnalytics(cfg, zap.NewNop())
		require.NoError(t, err)
		hashes = append(hashes, st.HashIP("203.0.113.7"))
		tracker.Close()
		require.NoError(t, st.Close())
	}

	assert.Equal(t, hashes[0], hashes[1], "same salt gives the same visitor hash across restarts")
	assert.FileExists(t, filepath.Join(dir, "data", "run0.db"))
}
