package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	res, err := Export(dir, Options{
		Site:          content.Default(),
		Year:          2025,
		ContactAction: "https://api.example.com/contact",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, res.Assets)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	body := string(index)
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `src="static/app.js"`)
	assert.Contains(t, body, `hx-post="https://api.example.com/contact"`)
	assert.Contains(t, body, "© 2025 Made By")

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Go Home")

	for _, name := range []string{"app.js", "site.css"} {
		info, err := os.Stat(filepath.Join(dir, DefaultAssetDir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestExportIntoFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Export(file, Options{Site: content.Default(), Year: 2025})
	assert.Error(t, err)
}
