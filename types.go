package socialdesk

import (
	"context"
	"encoding/json"

	"github.com/eringen/socialdesk/views"
)

// UpdatePayload is the partial update a save operation may apply. Text and
// Status are included when non-nil. PublicationDate and Image carry an
// explicit set flag because "absent" (leave untouched) and "null" (clear the
// value) mean different things to the backend.
type UpdatePayload struct {
	Text   *string
	Status *string

	PublicationDate    *string
	PublicationDateSet bool

	Image    *string
	ImageSet bool
}

func (p UpdatePayload) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4)
	if p.Text != nil {
		m["text"] = *p.Text
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	if p.PublicationDateSet {
		m["publication_date"] = p.PublicationDate
	}
	if p.ImageSet {
		m["image"] = p.Image
	}
	return json.Marshal(m)
}

// PostLister is the read surface the dashboard controller needs.
type PostLister interface {
	ListPosts(ctx context.Context) ([]views.Post, error)
}

// PostStore is the full data-access surface the handlers need. *Store
// implements it; tests substitute fakes.
type PostStore interface {
	PostLister
	UpdatePost(ctx context.Context, id string, payload UpdatePayload) error
	UploadImage(ctx context.Context, name, contentType string, data []byte) (string, error)
	ImageURL(path string) string
}
