package views

import (
	"strings"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	inputs := []string{
		"2024-03-15T14:30:00Z",
		"2024-03-15T14:30:00.123456789Z",
		"2024-03-15T14:30:00.123456",
		"2024-03-15T14:30:00",
		" 2024-03-15T14:30:00Z ",
	}

	for _, input := range inputs {
		got, err := ParseTimestamp(input)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) failed: %v", input, err)
			continue
		}
		if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
			t.Errorf("ParseTimestamp(%q) = %v, want 2024-03-15", input, got)
		}
	}

	if _, err := ParseTimestamp("15/03/2024"); err == nil {
		t.Error("ParseTimestamp should reject an unknown layout")
	}
}

func TestFormatDatePlaceholders(t *testing.T) {
	// Missing and malformed are distinct states to the operator.
	empty := ""
	bad := "pas une date"

	for _, f := range []func(*string) string{FormatDateLong, FormatDateShort} {
		if got := f(nil); got != PlaceholderNoDate {
			t.Errorf("nil date = %q, want %q", got, PlaceholderNoDate)
		}
		if got := f(&empty); got != PlaceholderNoDate {
			t.Errorf("empty date = %q, want %q", got, PlaceholderNoDate)
		}
		if got := f(&bad); got != PlaceholderBadDate {
			t.Errorf("bad date = %q, want %q", got, PlaceholderBadDate)
		}
	}
}

func TestFormatDateLong(t *testing.T) {
	ts := "2024-03-15T14:30:00Z"
	got := FormatDateLong(&ts)

	// Rendered in the local zone, so only check the zone-stable parts.
	local, _ := ParseTimestamp(ts)
	t2 := local.Local()
	if !strings.Contains(got, frenchMonths[t2.Month()-1]) {
		t.Errorf("FormatDateLong(%q) = %q, want French month name", ts, got)
	}
	if !strings.Contains(got, " à ") {
		t.Errorf("FormatDateLong(%q) = %q, want date à heure form", ts, got)
	}
}

func TestFormatDateShort(t *testing.T) {
	ts := "2024-03-15T14:30:00Z"
	parsed, _ := ParseTimestamp(ts)
	want := parsed.Local().Format("02/01/2006 15:04")

	if got := FormatDateShort(&ts); got != want {
		t.Errorf("FormatDateShort(%q) = %q, want %q", ts, got, want)
	}
}

func TestNormalizeNetwork(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"LinkedIn", "linkedin"},
		{"  Twitter  ", "twitter"},
		{"instagram", "instagram"},
		{"", NetworkUnknown},
	}

	for _, tt := range tests {
		if got := NormalizeNetwork(tt.input); got != tt.want {
			t.Errorf("NormalizeNetwork(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNetworkColor(t *testing.T) {
	tests := []struct {
		network string
		want    string
	}{
		{"linkedin", "bg-[#0077b5]"},
		{"LinkedIn", "bg-[#0077b5]"}, // stored casing varies
		{"twitter", "bg-[#1DA1F2]"},
		{"facebook", "bg-[#4267B2]"},
		{"myspace", "bg-gray-400"},
		{"", "bg-gray-400"},
	}

	for _, tt := range tests {
		if got := NetworkColor(tt.network); got != tt.want {
			t.Errorf("NetworkColor(%q) = %q, want %q", tt.network, got, tt.want)
		}
	}

	if !strings.Contains(NetworkColor("instagram"), "bg-gradient-to-r") {
		t.Errorf("NetworkColor(instagram) = %q, want the gradient", NetworkColor("instagram"))
	}
}

func TestStatusBadgeClass(t *testing.T) {
	if got := StatusBadgeClass("Publié"); !strings.Contains(got, "green") {
		t.Errorf("StatusBadgeClass(Publié) = %q, want green", got)
	}
	if got := StatusBadgeClass("Rejeté"); !strings.Contains(got, "red") {
		t.Errorf("StatusBadgeClass(Rejeté) = %q, want red", got)
	}
	// Edit-surface values fall through to the neutral style.
	if got := StatusBadgeClass(StatusValidated); !strings.Contains(got, "slate") {
		t.Errorf("StatusBadgeClass(%s) = %q, want neutral", StatusValidated, got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("court", 120); got != "court" {
		t.Errorf("Truncate(court) = %q, want unchanged", got)
	}

	// Rune-safe: accented text must not be cut mid-encoding.
	long := strings.Repeat("é", 130)
	got := Truncate(long, 120)
	if got != strings.Repeat("é", 120)+"…" {
		t.Errorf("Truncate cut multi-byte text wrong: %q", got)
	}
}
