package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
)

// ToasterID is the container notifications are rendered into.
const ToasterID = "toaster"

func toaster(n *contact.Notification) g.Node {
	var inner g.Node
	if n != nil {
		inner = toast(*n)
	}
	return toasterEl(nil, inner)
}

// Toaster renders the notification container holding n, marked for an HTMX
// out-of-band swap so it can ride along a form response.
func Toaster(n contact.Notification) g.Node {
	return toasterEl(g.Attr("hx-swap-oob", "true"), toast(n))
}

func toasterEl(swap, inner g.Node) g.Node {
	return h.Div(
		h.ID(ToasterID),
		h.Class("fixed bottom-4 right-4 z-[100] space-y-2"),
		h.Aria("live", "polite"),
		swap,
		inner,
	)
}

func toast(n contact.Notification) g.Node {
	class := "toast"
	if n.Variant == contact.VariantDestructive {
		class += " toast-destructive"
	}
	return h.Div(
		h.Class(class),
		h.Role("status"),
		h.Data("toast", string(n.Variant)),
		h.Data("testid", "toast"),
		h.P(h.Class("font-semibold"), g.Text(n.Title)),
		h.P(h.Class("text-sm opacity-90"), g.Text(n.Description)),
	)
}
