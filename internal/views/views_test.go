package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/store"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestProjectCardControls(t *testing.T) {
	testCases := []struct {
		name       string
		project    content.Project
		wantDemo   bool
		wantSource bool
	}{
		{
			name:       "both links",
			project:    content.Project{Title: "A", DemoURL: "https://demo.example", SourceURL: "https://github.com/a/a"},
			wantDemo:   true,
			wantSource: true,
		},
		{
			name:       "source only",
			project:    content.Project{Title: "B", SourceURL: "https://github.com/b/b"},
			wantSource: true,
		},
		{
			name:     "demo only",
			project:  content.Project{Title: "C", DemoURL: "https://demo.example"},
			wantDemo: true,
		},
		{
			name:    "neither",
			project: content.Project{Title: "D"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := render(t, ProjectCard(0, tc.project))
			assert.Equal(t, tc.wantDemo, strings.Contains(out, "Live Demo"))
			assert.Equal(t, tc.wantDemo, strings.Contains(out, `data-testid="button-demo"`))
			assert.Equal(t, tc.wantSource, strings.Contains(out, ">Code<"))
			assert.Equal(t, tc.wantSource, strings.Contains(out, `data-testid="button-github"`))
		})
	}
}

func TestProjectsForDefaultContent(t *testing.T) {
	site := content.Default()
	out := render(t, Projects(site.Projects))

	demos, sources := 0, 0
	for _, p := range site.Projects {
		if p.HasDemo() {
			demos++
		}
		if p.HasSource() {
			sources++
		}
	}
	assert.Equal(t, demos, strings.Count(out, `data-testid="button-demo"`))
	assert.Equal(t, sources, strings.Count(out, `data-testid="button-github"`))
	assert.Contains(t, out, `data-testid="badge-tech-tailwind-css"`)
	assert.Contains(t, out, `target="_blank" rel="noopener noreferrer"`)
}

func TestProjectIconsRotate(t *testing.T) {
	assert.Equal(t, content.IconCode, projectIcon(0))
	assert.Equal(t, content.IconSparkles, projectIcon(3))
	assert.Equal(t, content.IconCode, projectIcon(4))
}

func TestIndexHasEveryAnchor(t *testing.T) {
	out := render(t, Index(Page{Site: content.Default(), Year: 2025}))

	for _, id := range []string{"home", "about", "projects", "skills", "achievements", "experience", "contact"} {
		assert.Contains(t, out, `id="`+id+`"`, id)
		assert.Contains(t, out, `href="#`+id+`"`, id)
	}
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `data-spy-line="100"`)
	assert.Contains(t, out, `data-offset="80"`)
	assert.Contains(t, out, "© 2025 Made By DEBAPRIYA DEY")
	assert.Contains(t, out, `action="/contact"`)
	assert.NotContains(t, out, `data-testid="toast"`)
}

func TestIndexWithNotification(t *testing.T) {
	n := contact.Notification{Title: "Failed to send message!", Description: "Please try again later.", Variant: contact.VariantDestructive}
	out := render(t, Index(Page{
		Site:         content.Default(),
		Year:         2025,
		Form:         contact.Form{Name: "Ana", Email: "ana@x.com", Message: "Hi <there>"},
		Notification: &n,
	}))

	assert.Contains(t, out, `value="Ana"`)
	assert.Contains(t, out, `value="ana@x.com"`)
	assert.Contains(t, out, "Hi &lt;there&gt;")
	assert.Contains(t, out, "toast-destructive")
	assert.Contains(t, out, "Failed to send message!")
}

func TestContactFormFragment(t *testing.T) {
	out := render(t, ContactForm("/contact", contact.Form{}))

	assert.True(t, strings.HasPrefix(out, `<form id="contact-form"`))
	assert.Contains(t, out, `hx-post="/contact"`)
	assert.Contains(t, out, `value=""`)
	assert.Equal(t, 3, strings.Count(out, "required"))
	assert.Contains(t, out, `type="email"`)
	assert.NotContains(t, out, "disabled")
}

func TestToaster(t *testing.T) {
	out := render(t, Toaster(contact.Notification{Title: "Message Sent Successfully!", Variant: contact.VariantDefault}))
	assert.Contains(t, out, `id="toaster"`)
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `data-toast="default"`)
	assert.NotContains(t, out, "toast-destructive")
}

func TestMarkdownEscapesHTML(t *testing.T) {
	out := render(t, markdown("**bold** <script>alert(1)</script>"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestExperienceAlternates(t *testing.T) {
	out := render(t, ExperienceTimeline(content.Default().Experience))
	assert.Equal(t, 2, strings.Count(out, "timeline-left"))
	assert.Equal(t, 2, strings.Count(out, "timeline-right"))
}

func TestNotFound(t *testing.T) {
	out := render(t, NotFound(Page{}))
	assert.Contains(t, out, "404")
	assert.Contains(t, out, `href="/"`)
	assert.Contains(t, out, "Go Home")
}

func TestAdminDashboard(t *testing.T) {
	stats := &store.Stats{
		TotalVisitors:  12,
		UniqueVisitors: 5,
		TopPaths:       []store.PathCount{{Path: "/", Views: 12}},
		RecentVisitors: []store.Visit{{HashedIP: "abcdef0123456789", Path: "/", Timestamp: time.Now()}},
		RecentSubmissions: []store.Submission{
			{Name: "Ana", Email: "ana@x.com", Status: "sent", CreatedAt: time.Now()},
		},
	}
	out := render(t, AdminDashboard("/static", stats))
	assert.Contains(t, out, `data-stat="total-visits">12<`)
	assert.Contains(t, out, "abcdef0123456789")
	assert.Contains(t, out, "ana@x.com")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "DD", initials("DEBAPRIYA DEY"))
	assert.Equal(t, "", initials(""))
}

func TestHTMXConfigForAbsoluteAction(t *testing.T) {
	testCases := []struct {
		action string
		want   bool
	}{
		{action: "", want: false},
		{action: "/contact", want: false},
		{action: "https://api.example.com/contact", want: true},
		{action: "http://localhost:8080/contact", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.action, func(t *testing.T) {
			out := render(t, Index(Page{Site: content.Default(), Year: 2025, ContactAction: tc.action}))
			assert.Equal(t, tc.want, strings.Contains(out, `<meta name="htmx-config"`))
		})
	}
}

func TestThemeToggles(t *testing.T) {
	out := render(t, Index(Page{Site: content.Default(), Year: 2025}))

	assert.Contains(t, out, `<html lang="en" class="dark">`)
	assert.Equal(t, 2, strings.Count(out, "data-theme-toggle"))
	assert.Contains(t, out, `data-testid="button-theme-toggle"`)
	assert.Contains(t, out, `data-testid="button-theme-toggle-mobile"`)
}
