package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/nav"
)

// Navbar renders the fixed header with desktop links and the mobile drawer.
// The first section starts active; the scroll-spy script moves the marker.
func Navbar(profile content.Profile, sections []nav.Section) g.Node {
	return h.Nav(
		h.ID("navbar"),
		h.Class("fixed top-0 left-0 right-0 z-50 transition-all"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex items-center justify-between h-20"),
			h.A(h.Href("/"), h.Class("text-2xl font-bold gradient-text"), g.Text(initials(profile.Name))),
			h.Div(h.Class("hidden md:flex items-center gap-1"),
				navLinks(sections, "nav-link-"),
				themeToggle("button-theme-toggle"),
			),
			h.Button(
				h.Type("button"),
				h.Class("md:hidden p-2"),
				h.Data("menu-toggle", ""),
				h.Aria("expanded", "false"),
				h.Aria("controls", "mobile-menu"),
				h.Aria("label", "Toggle menu"),
				icon("menu", "w-6 h-6"),
			),
		),
		h.Div(
			h.ID("mobile-menu"),
			h.Class("md:hidden fixed inset-0 top-20 z-40"),
			h.Data("menu-backdrop", ""),
			g.Attr("hidden"),
			h.Div(
				h.Class("menu-panel p-4 space-y-1"),
				h.Data("menu-panel", ""),
				navLinks(sections, "mobile-nav-link-"),
				themeToggle("button-theme-toggle-mobile"),
			),
		),
	)
}

func navLinks(sections []nav.Section, testPrefix string) g.Node {
	links := make([]g.Node, 0, len(sections))
	for i, s := range sections {
		class := "nav-link px-4 py-2 rounded-md"
		if i == 0 {
			class += " active"
		}
		links = append(links, h.A(
			h.Href(s.Href()),
			h.Class(class),
			h.Data("nav-link", ""),
			h.Data("section", s.ID),
			h.Data("testid", testPrefix+s.ID),
			g.Text(s.Label),
		))
	}
	return g.Group(links)
}

// themeToggle switches between the dark and light palettes. The choice is
// kept in localStorage by the page script.
func themeToggle(testID string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("p-2 rounded-md"),
		h.Data("theme-toggle", ""),
		h.Data("testid", testID),
		h.Aria("label", "Toggle theme"),
		icon("sun", "w-5 h-5 theme-sun"),
		icon("moon", "w-5 h-5 theme-moon"),
	)
}

// initials shortens the owner's name for the logo.
func initials(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}
