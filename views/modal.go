package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// EditModal renders the edit surface for one post: the form on the left, a
// per-network phone preview on the right. The form fields come from
// ModalData rather than the Post so a failed save re-renders with the
// operator's unsaved values intact.
func EditModal(data ModalData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="fixed inset-0 z-50 flex items-center justify-center p-4 bg-black/60" data-modal-backdrop>`)
		b.WriteString(`<div class="bg-white rounded-xl shadow-2xl w-full max-w-5xl max-h-[90vh] overflow-hidden flex flex-col">`)

		b.WriteString(`<div class="px-6 py-3 flex items-center justify-between border-b border-slate-200 bg-slate-50">`)
		b.WriteString(`<h2 class="text-lg font-bold text-slate-700 flex items-center gap-2">`)
		b.WriteString(`<span class="w-3 h-3 rounded-full ` + NetworkColor(data.Post.SocialNetwork) + `"></span>`)
		b.WriteString(`Édition &amp; Prévisualisation</h2>`)
		b.WriteString(`<button type="button" data-modal-close class="text-slate-400 hover:text-slate-600">&#10005;</button>`)
		b.WriteString(`</div>`)

		if data.ErrMsg != "" {
			b.WriteString(`<div class="px-6 py-3 bg-red-50 border-b border-red-200 text-red-700 text-sm font-medium">`)
			b.WriteString(templ.EscapeString(data.ErrMsg))
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div class="flex-1 flex overflow-hidden">`)
		writeEditor(&b, data)
		writePreview(&b, data)
		b.WriteString(`</div></div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// EditPage wraps the edit surface in the full layout, for direct navigation
// to a post URL and for form posts made without the script layer. Keeps a
// failed save styled and retryable instead of a bare fragment.
func EditPage(data ModalData) templ.Component {
	return Layout("Édition", EditModal(data))
}

func writeEditor(b *strings.Builder, data ModalData) {
	action := "/post/" + templ.EscapeString(data.Post.ID) + "/save/"
	b.WriteString(`<form method="post" action="` + action + `" enctype="multipart/form-data"` +
		` hx-post="` + action + `" hx-encoding="multipart/form-data" hx-target="#modal-root" hx-swap="innerHTML"` +
		` class="flex-1 flex flex-col overflow-y-auto border-r border-slate-200 bg-white p-6 gap-5">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + templ.EscapeString(data.CSRF) + `">`)

	b.WriteString(`<div><label class="block text-sm font-semibold text-slate-700 mb-2">Visuel</label>`)
	b.WriteString(`<input type="file" name="image" accept="image/*" data-image-input class="block w-full text-sm text-slate-500">`)
	if data.ImageURL != "" {
		b.WriteString(`<img src="` + templ.EscapeString(data.ImageURL) + `" alt="Visuel du post" data-image-preview class="mt-3 w-full h-40 object-contain rounded-lg border border-slate-200 bg-slate-50">`)
	} else {
		b.WriteString(`<img src="" alt="" data-image-preview class="mt-3 w-full h-40 object-contain rounded-lg border border-slate-200 bg-slate-50 hidden">`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="flex-1 flex flex-col"><label class="block text-sm font-semibold text-slate-700 mb-2">Contenu</label>`)
	b.WriteString(`<textarea name="text" placeholder="Rédigez votre post ici..." class="flex-1 w-full p-4 border border-slate-300 rounded-lg text-sm leading-relaxed resize-none min-h-[160px]">`)
	b.WriteString(templ.EscapeString(data.Text))
	b.WriteString(`</textarea></div>`)

	b.WriteString(`<div class="bg-slate-50 rounded-lg p-5 border border-slate-200">`)
	b.WriteString(`<div class="grid grid-cols-2 gap-4 mb-4">`)
	b.WriteString(`<div><label class="block text-xs font-bold text-slate-500 uppercase mb-1">Statut</label>`)
	b.WriteString(`<select name="status" class="w-full border-slate-300 rounded shadow-sm text-sm">`)
	for _, s := range EditStatuses() {
		writeOption(b, s, s, data.Status)
	}
	b.WriteString(`</select></div>`)
	b.WriteString(`<div><label class="block text-xs font-bold text-slate-500 uppercase mb-1">Publication</label>`)
	b.WriteString(`<input type="datetime-local" name="publication_date" value="` + templ.EscapeString(data.DateInput) + `" class="w-full border-slate-300 rounded shadow-sm text-sm">`)
	b.WriteString(`<p class="text-[11px] text-slate-400 mt-1">` + templ.EscapeString(FormatDateLong(data.Post.PublicationDate)) + `</p>`)
	b.WriteString(`</div></div>`)

	if data.Post.ArticleBlogURL != "" {
		b.WriteString(`<div class="text-xs text-slate-400 truncate mb-3">Article: `)
		b.WriteString(`<a href="` + templ.EscapeString(data.Post.ArticleBlogURL) + `" target="_blank" rel="noreferrer" class="text-indigo-500 hover:underline font-medium">`)
		b.WriteString(templ.EscapeString(data.Post.ArticleBlogURL))
		b.WriteString(`</a></div>`)
	}

	b.WriteString(`<div class="flex gap-3 pt-2 border-t border-slate-200">`)
	b.WriteString(`<button type="button" data-modal-close class="flex-1 py-2 text-sm font-medium text-slate-600 bg-white border border-slate-300 rounded hover:bg-slate-50">Annuler</button>`)
	b.WriteString(`<button type="submit" class="flex-1 py-2 text-sm font-medium text-white bg-indigo-600 rounded hover:bg-indigo-700 shadow-sm">Enregistrer</button>`)
	b.WriteString(`</div></div></form>`)
}

// writePreview renders the phone mockup. Instagram shows the caption below
// the image, LinkedIn and the default layout show the text above it.
func writePreview(b *strings.Builder, data ModalData) {
	network := NormalizeNetwork(data.Post.SocialNetwork)

	b.WriteString(`<div class="hidden lg:flex w-[380px] bg-slate-100 items-center justify-center p-6 overflow-y-auto">`)
	b.WriteString(`<div class="w-full max-w-[320px] bg-white rounded-[24px] border-[6px] border-slate-800 shadow-2xl overflow-hidden min-h-[480px] flex flex-col">`)

	switch network {
	case NetworkInstagram:
		b.WriteString(`<div class="flex items-center justify-between p-3 border-b border-gray-100">`)
		b.WriteString(`<div class="flex items-center gap-2"><div class="w-8 h-8 rounded-full bg-gradient-to-tr from-yellow-400 to-purple-600"></div>`)
		b.WriteString(`<span class="text-xs font-semibold text-slate-900">votre_compte</span></div>`)
		b.WriteString(`<span class="text-slate-400">•••</span></div>`)
	case NetworkLinkedIn:
		b.WriteString(`<div class="flex items-center gap-3 p-4 border-b border-gray-100">`)
		b.WriteString(`<div class="w-10 h-10 rounded-full bg-slate-200"></div>`)
		b.WriteString(`<div class="flex flex-col"><span class="text-sm font-semibold text-slate-800">Votre Nom</span>`)
		b.WriteString(`<span class="text-[10px] text-slate-500">Expert • 2h</span></div></div>`)
	default:
		b.WriteString(`<div class="flex items-center gap-3 p-3 border-b border-gray-100">`)
		b.WriteString(`<div class="w-8 h-8 rounded-full bg-slate-200"></div>`)
		b.WriteString(`<div class="flex flex-col"><span class="text-sm font-semibold text-slate-800">Votre Compte</span>`)
		b.WriteString(`<span class="text-xs text-slate-500">Maintenant</span></div></div>`)
	}

	if network != NetworkInstagram && data.Text != "" {
		b.WriteString(`<div class="px-4 py-2 text-sm text-slate-800 whitespace-pre-wrap" data-preview-text>`)
		b.WriteString(templ.EscapeString(data.Text))
		b.WriteString(`</div>`)
	}
	if data.ImageURL != "" {
		b.WriteString(`<div class="w-full bg-slate-100"><img src="` + templ.EscapeString(data.ImageURL) + `" alt="" data-image-preview class="w-full h-auto object-cover"></div>`)
	}
	if network == NetworkInstagram && data.Text != "" {
		b.WriteString(`<div class="px-3 py-2 text-sm"><span class="font-semibold mr-2">votre_compte</span>`)
		b.WriteString(`<span class="text-slate-800 whitespace-pre-wrap" data-preview-text>` + templ.EscapeString(data.Text) + `</span></div>`)
	}

	b.WriteString(`<div class="p-3 border-t border-slate-100 mt-auto text-xs text-slate-400">Actions sociales...</div>`)
	b.WriteString(`</div></div>`)
}
