package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ConfigRequired is shown on every route when the backend credentials are
// missing or still carry a placeholder value.
func ConfigRequired() templ.Component {
	return Layout("Configuration Requise", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="min-h-[60vh] flex items-center justify-center">`+
			`<div class="bg-white p-8 rounded-xl shadow-lg max-w-md w-full text-center">`+
			`<h1 class="text-2xl font-bold text-slate-800 mb-4">Configuration Requise</h1>`+
			`<p class="text-slate-600">Pour utiliser cette application, vous devez renseigner `+
			`<code>SUPABASE_URL</code> et <code>SUPABASE_ANON_KEY</code> dans l'environnement.</p>`+
			`</div></div>`)
		return err
	}))
}

// NotFound renders the styled 404 page.
func NotFound() templ.Component {
	return Layout("Introuvable", statusPage("404", "Cette page n'existe pas."))
}

// ServerError renders the styled 500 page.
func ServerError() templ.Component {
	return Layout("Erreur", statusPage("500", "Une erreur interne est survenue."))
}

func statusPage(code, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="min-h-[60vh] flex flex-col items-center justify-center gap-3">`+
			`<p class="text-5xl font-bold text-slate-300">`+templ.EscapeString(code)+`</p>`+
			`<p class="text-slate-600">`+templ.EscapeString(msg)+`</p>`+
			`<a href="/" class="text-indigo-600 hover:underline font-medium">Retour au tableau de bord</a>`+
			`</div>`)
		return err
	})
}
