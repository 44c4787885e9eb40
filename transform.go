package socialdesk

import (
	"strings"
	"time"
	"unicode"

	"github.com/eringen/socialdesk/views"
)

// FilterAll is the wildcard filter value matching every post.
const FilterAll = "all"

// NetworkMatches reports whether a post passes the network filter.
// Comparison is case-insensitive; an unset network only matches "all".
func NetworkMatches(selected string, p views.Post) bool {
	if selected == FilterAll {
		return true
	}
	return strings.ToLower(p.SocialNetwork) == strings.ToLower(selected)
}

// StatusMatches reports whether a post passes the status filter. Unlike the
// network filter this comparison is exact-case; the stored status values are
// controlled vocabulary, not free-form user input.
func StatusMatches(selected string, p views.Post) bool {
	if selected == FilterAll {
		return true
	}
	return p.Status == selected
}

// FilterPosts derives the displayed subset. The input list is never mutated.
func FilterPosts(posts []views.Post, network, status string) []views.Post {
	filtered := make([]views.Post, 0, len(posts))
	for _, p := range posts {
		if NetworkMatches(network, p) && StatusMatches(status, p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// editableDateLayout is the wall-clock format of the datetime-local input,
// minute precision.
const editableDateLayout = "2006-01-02T15:04"

// ToEditableDate converts a stored absolute instant to the local wall-clock
// minute string the edit widget uses. Seconds are truncated, not rounded.
// Missing or unreadable timestamps become an empty editable value.
//
// Editing an absolute instant through a zone-naive local string is lossy if
// the operator's device changes timezone between edits. That is a known
// limitation of the product, kept for compatibility.
func ToEditableDate(ts *string) string {
	if ts == nil || *ts == "" {
		return ""
	}
	t, err := views.ParseTimestamp(*ts)
	if err != nil {
		return ""
	}
	return t.Local().Format(editableDateLayout)
}

// ToAbsolute converts an edited wall-clock string back to a UTC instant for
// persistence. An empty string means "unscheduled" and converts to nil.
func ToAbsolute(dateInput string) (*string, error) {
	dateInput = strings.TrimSpace(dateInput)
	if dateInput == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(editableDateLayout, dateInput, time.Local)
	if err != nil {
		// Some browsers submit seconds as well.
		t, err = time.ParseInLocation("2006-01-02T15:04:05", dateInput, time.Local)
		if err != nil {
			return nil, &FormatError{Value: dateInput, Err: err}
		}
	}
	s := t.UTC().Format(time.RFC3339)
	return &s, nil
}

// CleanImagePath strips exactly one redundant bucket prefix from a stored
// image path. Records written by older tooling stored "bucket/key" instead
// of "key", which would double the bucket segment in the public URL.
func CleanImagePath(path, bucket string) string {
	return strings.TrimPrefix(path, bucket+"/")
}

// SanitizeFilename replaces each whitespace character in an original
// filename so the resulting storage key is URL-friendly.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}
