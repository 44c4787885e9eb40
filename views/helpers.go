package views

import (
	"fmt"
	"strings"
	"time"
)

// Placeholders shown when a timestamp is missing or unreadable. Missing data
// and malformed data are different states to the operator and must stay
// distinguishable.
const (
	PlaceholderNoDate  = "Date non définie"
	PlaceholderBadDate = "Date invalide"
)

// timestampLayouts are the encodings the backend is known to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an absolute instant as stored by the backend.
// Zone-less values are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateLong renders a timestamp in the detail style: long French date
// plus short time, in the operator's local zone ("15 mars 2024 à 14:30").
func FormatDateLong(ts *string) string {
	if ts == nil || *ts == "" {
		return PlaceholderNoDate
	}
	t, err := ParseTimestamp(*ts)
	if err != nil {
		return PlaceholderBadDate
	}
	t = t.Local()
	return fmt.Sprintf("%d %s %d à %02d:%02d",
		t.Day(), frenchMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatDateShort renders a timestamp in the tabular style
// ("02/01/2006 15:04"), in the operator's local zone.
func FormatDateShort(ts *string) string {
	if ts == nil || *ts == "" {
		return PlaceholderNoDate
	}
	t, err := ParseTimestamp(*ts)
	if err != nil {
		return PlaceholderBadDate
	}
	return t.Local().Format("02/01/2006 15:04")
}

// NormalizeNetwork lowercases a network value and maps empty to unknown.
func NormalizeNetwork(network string) string {
	n := strings.ToLower(strings.TrimSpace(network))
	if n == "" {
		return NetworkUnknown
	}
	return n
}

// NetworkColor maps a network to its badge color classes. Total over the
// closed network set; anything unmatched gets the unknown fallback.
func NetworkColor(network string) string {
	switch NormalizeNetwork(network) {
	case NetworkLinkedIn:
		return "bg-[#0077b5]"
	case NetworkTwitter:
		return "bg-[#1DA1F2]"
	case NetworkFacebook:
		return "bg-[#4267B2]"
	case NetworkInstagram:
		return "bg-gradient-to-r from-[#833ab4] via-[#fd1d1d] to-[#fcb045]"
	default:
		return "bg-gray-400"
	}
}

// StatusBadgeClass maps a status to its pill classes in the table. The cases
// cover the filter-surface status set; edit-surface values fall through to
// the neutral style.
func StatusBadgeClass(status string) string {
	switch status {
	case "Publié":
		return "bg-green-100 text-green-700 border-green-200"
	case "A publier":
		return "bg-blue-100 text-blue-700 border-blue-200"
	case "Rejeté":
		return "bg-red-100 text-red-700 border-red-200"
	case "A valider":
		return "bg-amber-100 text-amber-700 border-amber-200"
	default:
		return "bg-slate-100 text-slate-600 border-slate-200"
	}
}

// Truncate shortens s to at most n runes, appending an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
