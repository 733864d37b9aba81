package views

import (
	"regexp"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// Projects renders the project grid.
func Projects(projects []content.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, ProjectCard(i, p))
	}
	return section("projects", "bg-background",
		sectionHeader("Featured Projects", "A showcase of my recent work, demonstrating expertise across various technologies and domains."),
		h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
	)
}

// ProjectCard renders one project. The Live Demo and Code controls are
// omitted when the corresponding URL is empty.
func ProjectCard(index int, p content.Project) g.Node {
	badges := make([]g.Node, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		badges = append(badges, h.Span(
			h.Class("badge"),
			h.Data("testid", "badge-tech-"+slug(tech)),
			g.Text(tech),
		))
	}

	return h.Article(
		h.Class("card project-card reveal-item flex flex-col"),
		h.Data("tilt", ""),
		h.Data("testid", "project-card-"+itoa(index)),
		h.Div(h.Class("flex items-start gap-4 mb-4"),
			h.Div(h.Class("icon-tile"), icon(projectIcon(index), "w-6 h-6")),
			h.H3(h.Class("text-xl font-bold"), g.Text(p.Title)),
		),
		h.Div(h.Class("prose text-muted mb-6 flex-1"), markdown(p.Description)),
		h.Div(h.Class("flex flex-wrap gap-2 mb-6"), g.Group(badges)),
		h.Div(h.Class("flex gap-3"),
			g.If(p.HasDemo(), external(p.DemoURL,
				h.Class("btn btn-primary"),
				h.Data("testid", "button-demo"),
				icon("external-link", "w-4 h-4"),
				g.Text("Live Demo"),
			)),
			g.If(p.HasSource(), external(p.SourceURL,
				h.Class("btn btn-outline"),
				h.Data("testid", "button-github"),
				icon(content.IconGitHub, "w-4 h-4"),
				g.Text("Code"),
			)),
		),
	)
}

var nonSlug = regexp.MustCompile(`\s+`)

// slug lowercases s and replaces whitespace runs with dashes.
func slug(s string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

func itoa(i int) string { return strconv.Itoa(i) }
