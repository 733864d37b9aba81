// Package views renders the portfolio page and its fragments as HTML.
package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/nav"
)

// DefaultContactAction is where the contact form posts.
const DefaultContactAction = "/contact"

// Page is everything needed to render the full document.
type Page struct {
	Site content.Site
	Year int
	// AssetPrefix is prepended to /app.js and /site.css.
	AssetPrefix   string
	ContactAction string
	// Form pre-fills the contact form, used when JavaScript is off and the
	// form posts as a regular page load.
	Form         contact.Form
	Notification *contact.Notification
}

func (p Page) action() string {
	if p.ContactAction == "" {
		return DefaultContactAction
	}
	return p.ContactAction
}

// Index renders the single-page portfolio.
func Index(p Page) g.Node {
	return document(p.Site.Profile.Name+" | Portfolio", p.AssetPrefix, htmxConfig(p.action()),
		Navbar(p.Site.Profile, nav.Sections),
		h.Main(
			Hero(p.Site.Profile, p.Site.Socials),
			About(p.Site.Profile),
			Projects(p.Site.Projects),
			Skills(p.Site.Skills),
			Achievements(p.Site.Achievements),
			ExperienceTimeline(p.Site.Experience),
			Contact(p.Site.ContactInfo, p.action(), p.Form),
		),
		Footer(p.Site.Profile, p.Site.Socials, p.Year),
		toaster(p.Notification),
	)
}

// NotFound renders the 404 page.
func NotFound(p Page) g.Node {
	return document("Page Not Found", p.AssetPrefix, nil,
		h.Div(h.Class("min-h-screen w-full flex items-center justify-center bg-background"),
			h.Div(h.Class("text-center space-y-6 px-4"),
				h.H1(h.Class("text-6xl font-bold gradient-text"), g.Text("404")),
				h.Div(h.Class("space-y-2"),
					h.H2(h.Class("text-2xl font-semibold"), g.Text("Page Not Found")),
					h.P(h.Class("text-muted"), g.Text("The page you're looking for doesn't exist or has been moved.")),
				),
				h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Go Home")),
			),
		),
	)
}

// htmxConfig lifts HTMX's same-origin restriction when the form posts to an
// absolute URL, as it does in a static export pointed at a separate server.
func htmxConfig(action string) g.Node {
	if !strings.HasPrefix(action, "http://") && !strings.HasPrefix(action, "https://") {
		return nil
	}
	return h.Meta(h.Name("htmx-config"), h.Content(`{"selfRequestsOnly":false}`))
}

func document(title, assetPrefix string, head g.Node, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"), h.Class("dark"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				head,
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
				h.Script(h.Src("https://unpkg.com/lucide@latest"), h.Defer()),
				h.Link(h.Rel("stylesheet"), h.Href(assetPrefix+"/site.css")),
				h.Script(h.Src(assetPrefix+"/app.js"), h.Defer()),
			),
			h.Body(
				h.Class("bg-background text-foreground antialiased"),
				h.Data("spy-line", strconv.Itoa(nav.SpyLine)),
				h.Data("offset", strconv.Itoa(nav.HeaderOffset)),
				h.Data("scrolled-at", strconv.Itoa(nav.ScrolledThreshold)),
				h.Data("reveal-margin", strconv.Itoa(nav.RevealMargin)),
				g.Group(body),
			),
		),
	)
}

// sectionHeader is the heading, underline and subtitle every section opens with.
func sectionHeader(title, subtitle string) g.Node {
	return h.Div(h.Class("text-center mb-16 space-y-4 reveal-item"),
		h.H2(h.Class("text-4xl lg:text-5xl font-bold gradient-text"), g.Text(title)),
		h.Div(h.Class("section-rule mx-auto")),
		g.If(subtitle != "", h.P(h.Class("text-lg text-muted max-w-2xl mx-auto"), g.Text(subtitle))),
	)
}

// section wraps a page region with its anchor and reveal latch hook.
func section(id, class string, children ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		h.Class("relative py-24 lg:py-32 overflow-hidden "+class),
		h.Data("reveal", ""),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"), g.Group(children)),
	)
}

// external is an outbound link opened in a new browsing context.
func external(href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Group(children))
}
