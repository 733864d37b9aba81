package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// Skills renders one card per category.
func Skills(categories []content.SkillCategory) g.Node {
	cards := make([]g.Node, 0, len(categories))
	for i, c := range categories {
		cards = append(cards, skillCard(i, c))
	}
	return section("skills", "bg-background",
		sectionHeader("Skills & Expertise", "Technologies and tools I use to bring ideas to life."),
		h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
	)
}

func skillCard(index int, c content.SkillCategory) g.Node {
	badges := make([]g.Node, 0, len(c.Skills))
	for _, s := range c.Skills {
		badges = append(badges, h.Span(h.Class("badge"), g.Text(s)))
	}
	return h.Div(
		h.Class("card reveal-item "+accentClass(c.Accent)),
		h.Data("testid", "skill-category-"+itoa(index)),
		h.Div(h.Class("flex items-center gap-3 mb-6"),
			h.Div(h.Class("icon-tile"), icon(c.Icon, "w-6 h-6")),
			h.H3(h.Class("text-2xl font-bold"), g.Text(c.Title)),
		),
		h.Div(h.Class("flex flex-wrap gap-2"), g.Group(badges)),
	)
}
