package socialdesk

import "embed"

// EmbeddedAssets contains static assets shipped with the dashboard:
// dashboard.js (modal loading, filter auto-submit, image preview).
//
//go:embed assets/*
var EmbeddedAssets embed.FS
