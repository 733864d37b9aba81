package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// Footer renders social links and the copyright line.
func Footer(profile content.Profile, socials []content.SocialLink, year int) g.Node {
	return h.Footer(
		h.Class("relative border-t border-primary-20 py-12"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 flex flex-col items-center gap-6"),
			socialRow(socials, "footer-social-"),
			h.Div(h.Class("section-rule")),
			h.P(h.Class("text-sm text-muted"),
				h.Data("testid", "text-copyright"),
				g.Text("© "+strconv.Itoa(year)+" Made By "+profile.Name),
			),
		),
	)
}
