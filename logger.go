package socialdesk

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. It writes JSON to stderr;
// unparsable levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
