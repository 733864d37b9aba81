package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Itsme-Debapriya/portfolio/internal/store"
)

// AdminLogin renders the dashboard login form.
func AdminLogin(assetPrefix, errMsg string) g.Node {
	return document("Admin Login", assetPrefix, nil,
		h.Div(h.Class("min-h-screen flex items-center justify-center px-4"),
			h.Form(h.Method("post"), h.Action("/admin/login"), h.Class("card w-full max-w-sm space-y-4"),
				h.H1(h.Class("text-2xl font-bold"), g.Text("Admin Login")),
				g.If(errMsg != "", h.P(h.Class("toast toast-destructive"), h.Role("alert"), g.Text(errMsg))),
				h.Input(h.Name("username"), h.Type("text"), h.Placeholder("Username"), h.Class("input"), g.Attr("required")),
				h.Input(h.Name("password"), h.Type("password"), h.Placeholder("Password"), h.Class("input"), g.Attr("required")),
				h.Button(h.Type("submit"), h.Class("btn btn-primary w-full"), g.Text("Sign in")),
			),
		),
	)
}

// AdminDashboard renders visitor and submission statistics.
func AdminDashboard(assetPrefix string, stats *store.Stats) g.Node {
	tiles := []struct {
		label string
		value int64
	}{
		{"Total visits", stats.TotalVisitors},
		{"Unique visitors", stats.UniqueVisitors},
		{"Today", stats.VisitorsToday},
		{"Last 7 days", stats.VisitorsThisWeek},
		{"Messages sent", stats.SubmissionsSent},
		{"Messages failed", stats.SubmissionsFailed},
	}
	tileNodes := make([]g.Node, 0, len(tiles))
	for _, t := range tiles {
		tileNodes = append(tileNodes, h.Div(h.Class("card"),
			h.P(h.Class("text-sm text-muted"), g.Text(t.label)),
			h.P(h.Class("text-3xl font-bold"), h.Data("stat", slug(t.label)), g.Text(strconv.FormatInt(t.value, 10))),
		))
	}

	pathRows := make([]g.Node, 0, len(stats.TopPaths))
	for _, p := range stats.TopPaths {
		pathRows = append(pathRows, h.Tr(h.Td(g.Text(p.Path)), h.Td(g.Text(strconv.FormatInt(p.Views, 10)))))
	}

	visitRows := make([]g.Node, 0, len(stats.RecentVisitors))
	for _, v := range stats.RecentVisitors {
		visitRows = append(visitRows, h.Tr(
			h.Td(g.Text(v.Timestamp.Format("2006-01-02 15:04"))),
			h.Td(h.Code(g.Text(v.HashedIP))),
			h.Td(g.Text(v.Path)),
			h.Td(h.Class("truncate max-w-xs"), g.Text(v.UserAgent)),
		))
	}

	subRows := make([]g.Node, 0, len(stats.RecentSubmissions))
	for _, s := range stats.RecentSubmissions {
		subRows = append(subRows, h.Tr(
			h.Td(g.Text(s.CreatedAt.Format("2006-01-02 15:04"))),
			h.Td(g.Text(s.Name)),
			h.Td(g.Text(s.Email)),
			h.Td(g.Text(s.Status)),
			h.Td(g.Text(s.Error)),
		))
	}

	return document("Admin Dashboard", assetPrefix, nil,
		h.Div(h.Class("max-w-6xl mx-auto px-4 py-12 space-y-10"),
			h.Div(h.Class("flex items-center justify-between"),
				h.H1(h.Class("text-3xl font-bold"), g.Text("Dashboard")),
				h.Div(h.Class("flex gap-3"),
					h.A(h.Href("/admin/export/stats"), h.Class("btn btn-outline"), g.Text("Export")),
					h.A(h.Href("/admin/logout"), h.Class("btn btn-outline"), g.Text("Log out")),
				),
			),
			h.Div(h.Class("grid grid-cols-2 md:grid-cols-3 gap-4"), g.Group(tileNodes)),
			table("Top pages", []string{"Path", "Views"}, pathRows),
			table("Recent submissions", []string{"When", "Name", "Email", "Status", "Error"}, subRows),
			table("Recent visits", []string{"When", "Visitor", "Path", "User agent"}, visitRows),
		),
	)
}

func table(title string, headers []string, rows []g.Node) g.Node {
	ths := make([]g.Node, 0, len(headers))
	for _, hd := range headers {
		ths = append(ths, h.Th(h.Class("text-left p-2"), g.Text(hd)))
	}
	return h.Div(h.Class("card overflow-x-auto"),
		h.H2(h.Class("text-xl font-semibold mb-4"), g.Text(title)),
		h.Table(h.Class("w-full text-sm"),
			h.THead(h.Tr(ths...)),
			h.TBody(g.Group(rows)),
		),
	)
}
