package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

var aboutIcons = []struct {
	icon   content.Icon
	accent content.Accent
}{
	{content.IconCode, content.AccentPrimary},
	{content.IconPalette, content.AccentSecondary},
	{content.IconSparkles, content.AccentPrimary},
	{content.IconZap, content.AccentSecondary},
}

// About renders the biography. The card tilts toward the pointer via the
// data-tilt hook.
func About(profile content.Profile) g.Node {
	paragraphs := make([]g.Node, 0, len(profile.About))
	for _, p := range profile.About {
		paragraphs = append(paragraphs, h.Div(h.Class("prose text-lg text-muted"), markdown(p)))
	}

	floating := make([]g.Node, 0, len(aboutIcons))
	for i, fi := range aboutIcons {
		floating = append(floating, h.Div(
			h.Class("floating-icon floating-icon-"+itoa(i)+" "+accentClass(fi.accent)),
			icon(fi.icon, "w-8 h-8"),
		))
	}

	return section("about", "bg-muted-30",
		h.Div(h.Class("grid lg:grid-cols-2 gap-12 items-center"),
			h.Div(h.Class("relative reveal-item"), h.Data("tilt", ""),
				h.Div(h.Class("about-card"), g.Group(floating)),
			),
			h.Div(h.Class("space-y-6 reveal-item"),
				h.H2(h.Class("text-4xl lg:text-5xl font-bold gradient-text"), g.Text("About Me")),
				h.Div(h.Class("section-rule")),
				g.Group(paragraphs),
			),
		),
	)
}
