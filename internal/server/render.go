package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

// nodeRender adapts a gomponents node to gin's render.Render.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func html(c *gin.Context, status int, node g.Node) {
	c.Render(status, nodeRender{node: node})
}
