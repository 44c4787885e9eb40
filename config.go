package socialdesk

import (
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for a socialdesk instance. Values come from
// the environment, with an optional .env file for local development.
type Config struct {
	SupabaseURL string `env:"SUPABASE_URL"`      // Required: backend project URL
	SupabaseKey string `env:"SUPABASE_ANON_KEY"` // Required: backend access key
	Bucket      string `env:"STORAGE_BUCKET"`    // Storage bucket for post images (default "post_image")

	Addr          string `env:"ADDR"`           // Listen address (default ":3000")
	SessionSecret string `env:"SESSION_SECRET"` // Required: cookie session encryption secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`  // Set true for HTTPS
	LogLevel      string `env:"LOG_LEVEL"`      // zerolog level (default "info")
}

// LoadConfig reads configuration from a .env file when present, falling back
// to process environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Bucket == "" {
		c.Bucket = "post_image"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// placeholders that scaffolded env files ship with; credentials containing
// one mean the operator never configured the backend.
var configPlaceholders = []string{"votre-projet", "your-project"}

// Configured reports whether the backend credentials are usable. When false
// the app serves the configuration-required page instead of operating.
func (c Config) Configured() bool {
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		return false
	}
	for _, p := range configPlaceholders {
		if strings.Contains(c.SupabaseURL, p) || strings.Contains(c.SupabaseKey, p) {
			return false
		}
	}
	return true
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
