package socialdesk

import "errors"

// ErrPostNotFound is wrapped by UpdateError when the backend matched no row
// for the given id. Callers that need the distinction can errors.Is for it;
// the dashboard treats it like any other save failure.
var ErrPostNotFound = errors.New("post not found")

// FetchError reports a failed list load. The raw cause is kept for logging;
// operators only ever see a generic message.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch posts: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// UpdateError reports a failed save of a post's editable fields.
type UpdateError struct {
	ID  string
	Err error
}

func (e *UpdateError) Error() string { return "update post " + e.ID + ": " + e.Err.Error() }
func (e *UpdateError) Unwrap() error { return e.Err }

// UploadError reports a failed image upload.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string { return "upload " + e.Key + ": " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// FormatError reports an unparsable date entered in the edit surface. It is
// always handled locally; it never reaches the backend or crashes a render.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string { return "parse " + e.Value + ": " + e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }
