package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// ExperienceTimeline renders entries on a vertical timeline, alternating
// sides starting on the left.
func ExperienceTimeline(items []content.Experience) g.Node {
	entries := make([]g.Node, 0, len(items))
	for i, e := range items {
		side := "timeline-left"
		if i%2 == 1 {
			side = "timeline-right"
		}

		bullets := make([]g.Node, 0, len(e.Achievements))
		for _, a := range e.Achievements {
			bullets = append(bullets, h.Li(h.Class("flex gap-2"),
				icon(content.IconSparkles, "w-4 h-4 mt-1 shrink-0"),
				h.Span(g.Text(a)),
			))
		}

		entries = append(entries, h.Div(
			h.Class("timeline-entry reveal-item "+side),
			h.Data("testid", "experience-"+itoa(i)),
			h.Div(h.Class("timeline-dot"), icon(content.IconBriefcase, "w-5 h-5")),
			h.Div(h.Class("card"),
				h.H3(h.Class("text-xl font-bold"), g.Text(e.Role)),
				h.P(h.Class("font-semibold gradient-text"), g.Text(e.Company)),
				h.P(h.Class("text-sm text-muted mb-4"), g.Text(e.Duration)),
				g.If(len(bullets) > 0, h.Ul(h.Class("space-y-2"), g.Group(bullets))),
			),
		))
	}
	return section("experience", "bg-background",
		sectionHeader("Experience", "My professional journey and the certifications along the way."),
		h.Div(h.Class("timeline relative"), g.Group(entries)),
	)
}
