package socialdesk

import "testing"

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"empty", Config{}, false},
		{"missing key", Config{SupabaseURL: "https://proj.supabase.co"}, false},
		{"missing url", Config{SupabaseKey: "key"}, false},
		{"placeholder url", Config{SupabaseURL: "https://votre-projet.supabase.co", SupabaseKey: "key"}, false},
		{"placeholder key", Config{SupabaseURL: "https://proj.supabase.co", SupabaseKey: "your-project-anon-key"}, false},
		{"usable", Config{SupabaseURL: "https://proj.supabase.co", SupabaseKey: "real-key"}, true},
	}

	for _, tt := range tests {
		if got := tt.cfg.Configured(); got != tt.want {
			t.Errorf("%s: Configured() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.setDefaults()

	if cfg.Bucket != "post_image" {
		t.Errorf("Bucket = %q, want post_image", cfg.Bucket)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}

	// Explicit values are never overwritten.
	cfg = Config{Bucket: "b", Addr: ":9999", LogLevel: "debug"}
	cfg.setDefaults()
	if cfg.Bucket != "b" || cfg.Addr != ":9999" || cfg.LogLevel != "debug" {
		t.Errorf("setDefaults overwrote explicit values: %+v", cfg)
	}
}
