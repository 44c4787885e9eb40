package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Dashboard renders the full list screen: header, filter bar, and either the
// post table, the blocking error panel, or the empty-filter panel.
func Dashboard(data DashboardData) templ.Component {
	return Layout("Social Manager", dashboardBody(data))
}

func dashboardBody(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<header class="flex items-center justify-between gap-4 mb-6">`)
		b.WriteString(`<div><h1 class="text-3xl font-bold text-slate-900 tracking-tight">Social Manager</h1>`)
		b.WriteString(`<p class="text-slate-500 mt-1">Liste des publications à gérer.</p></div>`)
		b.WriteString(`<form method="post" action="/refresh/" hx-post="/refresh/" hx-target="#post-table" hx-swap="outerHTML">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + templ.EscapeString(data.CSRF) + `">`)
		b.WriteString(`<input type="hidden" name="network" value="` + templ.EscapeString(data.Network) + `">`)
		b.WriteString(`<input type="hidden" name="status" value="` + templ.EscapeString(data.Status) + `">`)
		b.WriteString(`<button type="submit" title="Rafraichir" class="p-2 text-slate-500 hover:text-indigo-600 bg-white rounded-lg border border-slate-200 shadow-sm">&#8635;</button>`)
		b.WriteString(`</form></header>`)

		if data.Flash != "" {
			b.WriteString(`<div class="mb-4 px-4 py-3 rounded-lg bg-green-50 border border-green-200 text-green-700 text-sm">`)
			b.WriteString(templ.EscapeString(data.Flash))
			b.WriteString(`</div>`)
		}

		writeFilterBar(&b, data)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		return PostTable(data).Render(ctx, w)
	})
}

func writeFilterBar(b *strings.Builder, data DashboardData) {
	b.WriteString(`<form id="filters" method="get" action="/"` +
		` hx-get="/" hx-target="#post-table" hx-swap="outerHTML" hx-push-url="true"` +
		` class="bg-white p-4 rounded-xl shadow-sm border border-slate-200 flex gap-4 items-center justify-between mb-6">`)
	b.WriteString(`<div class="flex gap-2 overflow-x-auto">`)
	writeNetworkButton(b, "all", "Tous", data.Network)
	for _, net := range Networks() {
		writeNetworkButton(b, net, net, data.Network)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<div class="flex items-center gap-2"><span class="text-sm text-slate-500 font-medium">Statut:</span>`)
	b.WriteString(`<select name="status" class="bg-white border border-slate-300 text-slate-700 text-sm rounded-lg p-2.5" onchange="this.form.requestSubmit()">`)
	writeOption(b, "all", "Tous les statuts", data.Status)
	for _, s := range FilterStatuses() {
		writeOption(b, s, s, data.Status)
	}
	b.WriteString(`</select></div>`)
	b.WriteString(`<input type="hidden" name="network" value="` + templ.EscapeString(data.Network) + `">`)
	b.WriteString(`<input type="hidden" name="partial" value="table">`)
	b.WriteString(`</form>`)
}

func writeNetworkButton(b *strings.Builder, value, label, active string) {
	cls := "px-4 py-2 rounded-lg text-sm font-medium capitalize whitespace-nowrap border bg-white text-slate-600 border-slate-200 hover:bg-slate-50"
	if value == active {
		cls = "px-4 py-2 rounded-lg text-sm font-medium capitalize whitespace-nowrap border bg-indigo-600 text-white border-indigo-600"
	}
	b.WriteString(`<button type="submit" name="network" value="` + templ.EscapeString(value) + `" class="` + cls + `">`)
	b.WriteString(templ.EscapeString(label))
	b.WriteString(`</button>`)
}

func writeOption(b *strings.Builder, value, label, active string) {
	sel := ""
	if value == active {
		sel = " selected"
	}
	b.WriteString(`<option value="` + templ.EscapeString(value) + `"` + sel + `>` + templ.EscapeString(label) + `</option>`)
}

// PostTable renders the table region only. Served on its own for HTMX
// partial refreshes, so filter changes never reload the whole page.
func PostTable(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="post-table">`)
		switch {
		case data.Errored:
			b.WriteString(`<div class="text-center py-20 text-red-500 bg-red-50 rounded-xl border border-red-100 p-8">`)
			b.WriteString(`<p class="font-bold mb-2">Erreur</p>`)
			b.WriteString(templ.EscapeString(data.ErrMsg))
			b.WriteString(`</div>`)
		case len(data.Posts) == 0:
			b.WriteString(`<div class="text-center py-20 text-slate-400 bg-white rounded-xl border border-dashed border-slate-300">`)
			b.WriteString(`<p class="text-lg">Aucun post ne correspond aux filtres sélectionnés.</p>`)
			b.WriteString(`<a href="/" class="mt-4 inline-block text-indigo-600 hover:underline font-medium">Réinitialiser les filtres</a>`)
			b.WriteString(`</div>`)
		default:
			writeTable(&b, data.Posts)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTable(b *strings.Builder, posts []Post) {
	b.WriteString(`<div class="bg-white shadow-sm border border-slate-200 rounded-xl overflow-hidden"><table class="w-full text-sm text-left text-slate-600">`)
	b.WriteString(`<thead class="text-xs text-slate-700 uppercase bg-slate-50 border-b border-slate-200"><tr>`)
	b.WriteString(`<th class="px-6 py-4 font-semibold">Date prévue</th>`)
	b.WriteString(`<th class="px-6 py-4 font-semibold">Réseau</th>`)
	b.WriteString(`<th class="px-6 py-4 font-semibold">Contenu (Extrait)</th>`)
	b.WriteString(`<th class="px-6 py-4 font-semibold">Statut</th>`)
	b.WriteString(`</tr></thead><tbody class="divide-y divide-slate-100">`)
	for _, p := range posts {
		writeRow(b, p)
	}
	b.WriteString(`</tbody></table></div>`)
}

func writeRow(b *strings.Builder, p Post) {
	b.WriteString(`<tr class="bg-white hover:bg-indigo-50/30 cursor-pointer" hx-get="/post/` + templ.EscapeString(p.ID) + `/" hx-target="#modal-root" hx-swap="innerHTML">`)
	b.WriteString(`<td class="px-6 py-4 whitespace-nowrap font-medium text-slate-900">`)
	b.WriteString(templ.EscapeString(FormatDateShort(p.PublicationDate)))
	b.WriteString(`</td>`)

	network := p.SocialNetwork
	if network == "" {
		network = "Inconnu"
	}
	b.WriteString(`<td class="px-6 py-4 whitespace-nowrap">`)
	b.WriteString(`<span class="inline-flex items-center px-2.5 py-0.5 rounded text-xs font-bold text-white uppercase tracking-wider ` + NetworkColor(p.SocialNetwork) + `">`)
	b.WriteString(templ.EscapeString(network))
	b.WriteString(`</span></td>`)

	b.WriteString(`<td class="px-6 py-4"><div class="max-w-md truncate text-slate-500">`)
	if p.Text == "" {
		b.WriteString(`<span class="italic text-slate-400">Pas de texte</span>`)
	} else {
		b.WriteString(templ.EscapeString(Truncate(p.Text, 120)))
	}
	b.WriteString(`</div></td>`)

	status := p.Status
	if status == "" {
		status = "Inconnu"
	}
	b.WriteString(`<td class="px-6 py-4 whitespace-nowrap">`)
	b.WriteString(`<span class="px-2 py-1 text-xs font-semibold rounded-full border ` + StatusBadgeClass(p.Status) + `">`)
	b.WriteString(templ.EscapeString(status))
	b.WriteString(`</span></td></tr>`)
}
