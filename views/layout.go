package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Layout wraps page content in the HTML shell shared by every page.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="fr"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(title) + `</title>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		b.WriteString(`<script src="https://cdn.tailwindcss.com"></script>`)
		b.WriteString(`<script src="/public/dashboard.js" defer></script>`)
		b.WriteString(`</head><body class="min-h-screen bg-slate-100 text-slate-800">`)
		b.WriteString(`<main class="max-w-6xl mx-auto p-6">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><div id="modal-root"></div></body></html>`)
		return err
	})
}
