package socialdesk

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eringen/socialdesk/views"
)

// LoadState is the list screen's lifecycle state.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateErrored
)

// loadErrMsg is the generic user-facing message for a failed list load; the
// raw backend error goes to the log only.
const loadErrMsg = "Impossible de charger les posts. Vérifiez la connexion au backend."

// Dashboard owns the loaded post list and the error/loading flags for the
// list screen. Refreshes are sequenced: each one takes a ticket, and a
// completion whose ticket has been superseded is discarded, so the most
// recent refresh always wins even when completions arrive out of order.
type Dashboard struct {
	mu     sync.Mutex
	lister PostLister
	log    zerolog.Logger

	seq    uint64
	state  LoadState
	posts  []views.Post
	errMsg string
}

// NewDashboard creates an idle Dashboard backed by the given lister.
func NewDashboard(lister PostLister, log zerolog.Logger) *Dashboard {
	return &Dashboard{
		lister: lister,
		log:    log.With().Str("component", "dashboard").Logger(),
		posts:  []views.Post{},
	}
}

// Refresh reloads the full list. On success the displayed list is replaced
// wholesale and any previous error cleared; on failure the previous list is
// kept and a user-facing error message stored. Loading always ends in
// exactly one of ready/errored — unless a newer refresh started meanwhile,
// in which case this completion is dropped and the newer one decides.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.seq++
	ticket := d.seq
	d.state = StateLoading
	d.mu.Unlock()

	posts, err := d.lister.ListPosts(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if ticket != d.seq {
		d.log.Debug().Uint64("ticket", ticket).Msg("stale refresh discarded")
		return
	}
	if err != nil {
		d.log.Error().Err(err).Msg("list load failed")
		d.state = StateErrored
		d.errMsg = loadErrMsg
		return
	}
	d.posts = posts
	d.errMsg = ""
	d.state = StateReady
}

// Snapshot returns the current list, state, and user-facing error message.
func (d *Dashboard) Snapshot() ([]views.Post, LoadState, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.posts, d.state, d.errMsg
}

// Find returns the loaded post with the given id.
func (d *Dashboard) Find(id string) (views.Post, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range d.posts {
		if p.ID == id {
			return p, true
		}
	}
	return views.Post{}, false
}
