package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// Hero is the landing region with the owner's name and calls to action.
func Hero(profile content.Profile, socials []content.SocialLink) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("relative min-h-screen flex items-center justify-center overflow-hidden"),
		h.Data("reveal", ""),
		floatingShapes(8),
		h.Div(h.Class("max-w-5xl mx-auto px-4 text-center space-y-8 relative z-10"),
			h.H1(h.Class("text-5xl lg:text-7xl font-bold reveal-item"),
				g.Text("Hi, I'm "+profile.Name+"."),
				h.Br(),
				h.Span(h.Class("gradient-text"), g.Text(profile.Headline)),
			),
			h.P(h.Class("text-xl text-muted max-w-2xl mx-auto reveal-item"), g.Text(profile.Tagline)),
			h.Div(h.Class("flex flex-wrap gap-4 justify-center reveal-item"),
				h.A(h.Href("#projects"), h.Class("btn btn-primary"), h.Data("scroll-to", "projects"),
					h.Data("testid", "button-view-work"), g.Text("View My Work")),
				h.A(h.Href("#contact"), h.Class("btn btn-outline"), h.Data("scroll-to", "contact"),
					h.Data("testid", "button-get-in-touch"), g.Text("Get In Touch")),
			),
			socialRow(socials, "hero-social-"),
		),
		h.A(h.Href("#about"), h.Class("scroll-indicator"), h.Data("scroll-to", "about"),
			h.Aria("label", "Scroll to about"), icon("chevron-down", "w-6 h-6")),
	)
}

func socialRow(socials []content.SocialLink, testPrefix string) g.Node {
	if len(socials) == 0 {
		return nil
	}
	links := make([]g.Node, 0, len(socials))
	for _, s := range socials {
		links = append(links, external(s.URL,
			h.Class("social-link"),
			h.Aria("label", s.Label),
			h.Data("testid", testPrefix+slug(s.Label)),
			icon(s.Icon, "w-5 h-5"),
		))
	}
	return h.Div(h.Class("flex gap-4 justify-center"), g.Group(links))
}

// floatingShapes renders the decorative blurred circles. Positions come from
// the stylesheet's nth-child rules so output is deterministic.
func floatingShapes(count int) g.Node {
	shapes := make([]g.Node, count)
	for i := range shapes {
		shapes[i] = h.Div(h.Class("floating-shape"))
	}
	return h.Div(h.Class("absolute inset-0 overflow-hidden pointer-events-none"), h.Aria("hidden", "true"), g.Group(shapes))
}
