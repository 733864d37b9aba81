package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// Achievements renders milestone cards in declaration order.
func Achievements(items []content.Achievement) g.Node {
	cards := make([]g.Node, 0, len(items))
	for i, a := range items {
		cards = append(cards, h.Div(
			h.Class("card achievement-card reveal-item "+accentClass(a.Accent)),
			h.Data("testid", "achievement-"+itoa(i)),
			h.Div(h.Class("flex items-center justify-between mb-4"),
				h.Div(h.Class("icon-tile"), icon(a.Icon, "w-7 h-7")),
				h.Span(h.Class("badge"), g.Text(a.Year)),
			),
			h.H3(h.Class("text-xl font-bold mb-3"), g.Text(a.Title)),
			h.Div(h.Class("prose text-muted"), markdown(a.Description)),
		))
	}
	return section("achievements", "bg-muted-30",
		sectionHeader("Achievements", "Milestones and recognitions that mark my journey of continuous learning and excellence."),
		h.Div(h.Class("flex flex-col md:flex-row gap-10"), g.Group(cards)),
	)
}
