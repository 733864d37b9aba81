package views

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// md renders content copy. Raw HTML in the source is escaped.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Typographer),
)

// markdown converts src to HTML, falling back to escaped text.
func markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(buf.String())
}
