package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/views"
)

func (s *Server) page() views.Page {
	return views.Page{
		Site:          s.site,
		Year:          s.now().Year(),
		AssetPrefix:   "/static",
		ContactAction: views.DefaultContactAction,
	}
}

func (s *Server) index(c *gin.Context) {
	html(c, http.StatusOK, views.Index(s.page()))
}

// submitContact answers an HTMX post with the form fragment and an
// out-of-band toast. Without HTMX the whole page is rendered again.
func (s *Server) submitContact(c *gin.Context) {
	var form contact.Form
	var out contact.Outcome
	if err := c.ShouldBind(&form); err != nil {
		out = s.contact.Reject(c.Request.Context(), form, err)
	} else {
		out = s.contact.Submit(c.Request.Context(), form)
	}

	if c.GetHeader("HX-Request") == "true" {
		html(c, http.StatusOK, g.Group([]g.Node{
			views.ContactForm(views.DefaultContactAction, out.Form),
			views.Toaster(out.Notification),
		}))
		return
	}

	p := s.page()
	p.Form = out.Form
	p.Notification = &out.Notification
	html(c, http.StatusOK, views.Index(p))
}

func (s *Server) contactForm(c *gin.Context) {
	html(c, http.StatusOK, views.ContactForm(views.DefaultContactAction, contact.Form{}))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"mail":         s.cfg.Mail.Configured(),
		"analytics":    s.analytics != nil,
		"mailProvider": s.cfg.Mail.Provider,
	})
}

func (s *Server) notFound(c *gin.Context) {
	html(c, http.StatusNotFound, views.NotFound(s.page()))
}
