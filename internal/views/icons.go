package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// icon renders a lucide placeholder that the icon script swaps for an SVG.
func icon(name content.Icon, class string) g.Node {
	return h.I(h.Data("lucide", string(name)), h.Class(class), h.Aria("hidden", "true"))
}

// projectIcons rotate across project cards by index.
var projectIcons = []content.Icon{content.IconCode, content.IconRocket, content.IconZap, content.IconSparkles}

func projectIcon(index int) content.Icon {
	return projectIcons[index%len(projectIcons)]
}

func accentClass(a content.Accent) string {
	if a == content.AccentSecondary {
		return "accent-secondary"
	}
	return "accent-primary"
}
