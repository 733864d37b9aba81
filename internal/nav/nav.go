// Package nav owns the page's section registry and the numbers the page
// script navigates by. The constants are rendered as data attributes on
// <body>; the script's scroll-spy, offset scrolling and reveal read them
// from there.
package nav

const (
	// SpyLine is the distance from the viewport top, in CSS pixels, of the
	// line the scroll-spy tests section boxes against.
	SpyLine = 100
	// HeaderOffset is subtracted from a section's absolute top when
	// smooth-scrolling so the fixed navbar does not cover the heading.
	HeaderOffset = 80
	// ScrolledThreshold is the page offset past which the navbar switches to
	// its scrolled style.
	ScrolledThreshold = 50
	// RevealMargin shrinks the viewport on every side when deciding whether a
	// section has become visible.
	RevealMargin = 100
)

// Section is one anchor-addressable region of the page.
type Section struct {
	ID    string
	Label string
}

// Href is the same-page anchor for the section.
func (s Section) Href() string { return "#" + s.ID }

// Sections lists the page regions in declaration order. Scroll-spy ties are
// resolved by this order.
var Sections = []Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
	{ID: "achievements", Label: "Achievements"},
	{ID: "experience", Label: "Experience"},
	{ID: "contact", Label: "Contact"},
}
