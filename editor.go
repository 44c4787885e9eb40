package socialdesk

import "github.com/eringen/socialdesk/views"

// EditBuffer is the per-session copy of a post's editable fields. It is
// seeded when the operator opens a post, mutated from form input, and
// converted to an UpdatePayload on save. Canceling simply discards it: the
// underlying Post is never touched, so reopening reseeds the original
// values.
type EditBuffer struct {
	PostID    string
	Text      string
	Status    string
	DateInput string  // local wall-clock minute string
	Image     *string // storage path, replaced when a new file is uploaded
}

// NewEditBuffer seeds a fresh buffer from a post's current field values.
func NewEditBuffer(p views.Post) EditBuffer {
	status := p.Status
	if status == "" {
		status = views.StatusToVerify
	}
	return EditBuffer{
		PostID:    p.ID,
		Text:      p.Text,
		Status:    status,
		DateInput: ToEditableDate(p.PublicationDate),
		Image:     p.Image,
	}
}

// SetImage records the storage key of a freshly uploaded image.
func (b *EditBuffer) SetImage(key string) {
	b.Image = &key
}

// Payload converts the buffer to the update sent upstream. Every field this
// client considers editable is submitted; an empty date becomes an explicit
// null (unscheduled). An unparsable date is a FormatError, handled by the
// caller without leaving the edit surface.
func (b *EditBuffer) Payload() (UpdatePayload, error) {
	date, err := ToAbsolute(b.DateInput)
	if err != nil {
		return UpdatePayload{}, err
	}
	text := b.Text
	status := b.Status
	return UpdatePayload{
		Text:               &text,
		Status:             &status,
		PublicationDate:    date,
		PublicationDateSet: true,
		Image:              b.Image,
		ImageSet:           true,
	}, nil
}
