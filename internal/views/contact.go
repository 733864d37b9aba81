package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
)

// ContactFormID is the element the HTMX response replaces.
const ContactFormID = "contact-form"

// Contact renders the contact cards beside the form.
func Contact(info []content.ContactInfo, action string, form contact.Form) g.Node {
	cards := make([]g.Node, 0, len(info))
	for _, c := range info {
		cards = append(cards, contactCard(c))
	}

	return section("contact", "bg-background",
		sectionHeader("Get In Touch", "Have a project in mind or want to collaborate? I'd love to hear from you!"),
		h.Div(h.Class("grid lg:grid-cols-2 gap-12 items-start"),
			h.Div(h.Class("space-y-6 reveal-item"), g.Group(cards)),
			h.Div(h.Class("card reveal-item"), ContactForm(action, form)),
		),
	)
}

func contactCard(c content.ContactInfo) g.Node {
	body := []g.Node{
		h.Class("contact-card " + accentClass(c.Accent)),
		h.Data("testid", "contact-"+slug(c.Label)),
		h.Div(h.Class("icon-tile"), icon(c.Icon, "w-6 h-6")),
		h.Div(
			h.P(h.Class("text-sm text-muted"), g.Text(c.Label)),
			h.P(h.Class("font-semibold break-all"), g.Text(c.Value)),
		),
	}
	if c.URL == "" {
		return h.Div(body...)
	}
	return external(c.URL, body...)
}

// ContactForm renders the form with the given values. It is also the HTMX
// response fragment after a submission. The submit button stays enabled
// while a request is in flight.
func ContactForm(action string, form contact.Form) g.Node {
	return h.Form(
		h.ID(ContactFormID),
		h.Class("space-y-6"),
		h.Method("post"),
		h.Action(action),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		field("name", "Name", "text", "Your name", form.Name),
		field("email", "Email", "email", "your.email@example.com", form.Email),
		h.Div(h.Class("space-y-2"),
			h.Label(h.For("message"), h.Class("text-sm font-medium"), g.Text("Message")),
			h.Textarea(
				h.ID("message"),
				h.Name("message"),
				h.Rows("6"),
				h.Placeholder("Tell me about your project..."),
				g.Attr("required"),
				h.Class("input"),
				h.Data("testid", "input-message"),
				g.Text(form.Message),
			),
		),
		h.Button(
			h.Type("submit"),
			h.Class("btn btn-primary w-full"),
			h.Data("testid", "button-submit"),
			icon("send", "w-4 h-4"),
			g.Text("Send Message"),
		),
	)
}

func field(name, label, typ, placeholder, value string) g.Node {
	return h.Div(h.Class("space-y-2"),
		h.Label(h.For(name), h.Class("text-sm font-medium"), g.Text(label)),
		h.Input(
			h.ID(name),
			h.Name(name),
			h.Type(typ),
			h.Placeholder(placeholder),
			h.Value(value),
			g.Attr("required"),
			h.Class("input"),
			h.Data("testid", "input-"+name),
		),
	)
}
