// Package site writes the rendered portfolio to a directory for static
// hosting.
package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	g "maragu.dev/gomponents"

	"github.com/Itsme-Debapriya/portfolio/internal/assets"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/views"
)

// DefaultAssetDir is where the script and stylesheet land, relative to the
// output directory.
const DefaultAssetDir = "static"

// Options controls an export.
type Options struct {
	Site content.Site
	Year int
	// ContactAction is the endpoint the form posts to. Empty means /contact.
	ContactAction string
}

// Result summarizes what was written.
type Result struct {
	Pages  int
	Assets int
}

// Export renders index.html and 404.html into dir and copies the embedded
// assets under dir/static.
func Export(dir string, opts Options) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	page := views.Page{
		Site:          opts.Site,
		Year:          opts.Year,
		AssetPrefix:   DefaultAssetDir,
		ContactAction: opts.ContactAction,
	}
	pages := map[string]g.Node{
		"index.html": views.Index(page),
		"404.html":   views.NotFound(page),
	}
	for name, node := range pages {
		if err := writeNode(filepath.Join(dir, name), node); err != nil {
			return res, err
		}
		res.Pages++
	}

	n, err := copyAssets(filepath.Join(dir, DefaultAssetDir))
	res.Assets = n
	return res, err
}

func writeNode(path string, node g.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := node.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

func copyAssets(dst string) (int, error) {
	src := assets.Static()
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		in, err := src.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		count++
		return out.Close()
	})
	if err != nil {
		return count, fmt.Errorf("copying assets: %w", err)
	}
	return count, nil
}
