// Package socialdesk is a review dashboard for social-media posts pending
// validation and publication. It lists posts from a hosted backend, lets an
// operator filter by network and status, edit text/status/publication date/
// image in a preview modal, and persists changes back to the backend with
// image files stored in an object-storage bucket.
//
// Built with Echo and templ; the backend is reached over its REST surface
// (PostgREST for the posts table, Storage for the image bucket).
package socialdesk

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// App is the central socialdesk application. It wires together the store,
// the dashboard controller, middleware, and routes.
type App struct {
	Config    Config
	Echo      *echo.Echo
	Store     PostStore
	Dashboard *Dashboard
	Log       zerolog.Logger

	staticDir string
}

// New creates a socialdesk App with the given configuration.
func New(cfg Config, log zerolog.Logger, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Log:       log,
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the store, dashboard, middleware, and routes, then
// starts the server. Missing backend credentials do not prevent startup:
// the app comes up serving the configuration-required page.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("socialdesk: SessionSecret is required")
	}

	if a.Store == nil {
		a.Store = NewStore(a.Config, a.Log)
	}
	a.Dashboard = NewDashboard(a.Store, a.Log)

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework asset, falling through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "assets")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/dashboard.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/", a.handleDashboard)
	e.POST("/refresh/", a.handleRefresh)
	e.GET("/post/:id/", a.handleEditModal)
	e.POST("/post/:id/save/", a.handleSave)
}
