package socialdesk

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/socialdesk/views"
)

// User-facing error messages. Raw backend errors go to the log only.
const (
	saveErrMsg     = "Erreur lors de la sauvegarde. Réessayez."
	dateErrMsg     = "Date de publication invalide."
	tooLargeMsg    = "Fichier trop volumineux (max 10 Mo)."
	readFileErrMsg = "Impossible de lire le fichier sélectionné."
)

// isHX reports whether the request was issued by htmx, in which case
// handlers answer with partials instead of full pages.
func isHX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// handleDashboard serves the list screen. Filters arrive as query
// parameters and only narrow the in-memory list; they never trigger a
// reload. An HTMX request for the table partial gets just the table region.
func (a *App) handleDashboard(c echo.Context) error {
	network := c.QueryParam("network")
	if network == "" {
		network = FilterAll
	}
	status := c.QueryParam("status")
	if status == "" {
		status = FilterAll
	}

	posts, state, errMsg := a.Dashboard.Snapshot()
	if state == StateIdle {
		// First visit: load on mount.
		a.Dashboard.Refresh(c.Request().Context())
		posts, state, errMsg = a.Dashboard.Snapshot()
	}

	data := views.DashboardData{
		Posts:   FilterPosts(posts, network, status),
		Network: network,
		Status:  status,
		Errored: state == StateErrored,
		ErrMsg:  errMsg,
		Flash:   popFlash(c),
		CSRF:    CsrfToken(c),
	}

	if isHX(c) && c.QueryParam("partial") == "table" {
		return Render(c, views.PostTable(data))
	}
	return Render(c, views.Dashboard(data))
}

// handleRefresh reloads the full list from the backend. An htmx request gets
// the refreshed table partial with the active filters applied; a plain form
// post goes back to the dashboard. Re-entrant: refreshing while errored or
// ready both go back through loading.
func (a *App) handleRefresh(c echo.Context) error {
	a.Dashboard.Refresh(c.Request().Context())
	if !isHX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	network := c.FormValue("network")
	if network == "" {
		network = FilterAll
	}
	status := c.FormValue("status")
	if status == "" {
		status = FilterAll
	}
	posts, state, errMsg := a.Dashboard.Snapshot()
	return Render(c, views.PostTable(views.DashboardData{
		Posts:   FilterPosts(posts, network, status),
		Network: network,
		Status:  status,
		Errored: state == StateErrored,
		ErrMsg:  errMsg,
		CSRF:    CsrfToken(c),
	}))
}

// handleEditModal serves the edit surface for one post, seeded from the
// listed post's current values. Htmx gets the overlay fragment; direct
// navigation gets the full page.
func (a *App) handleEditModal(c echo.Context) error {
	post, ok := a.Dashboard.Find(c.Param("id"))
	if !ok {
		if isHX(c) {
			return c.NoContent(http.StatusNotFound)
		}
		return RenderStatus(c, http.StatusNotFound, views.NotFound())
	}
	buf := NewEditBuffer(post)
	data := a.modalData(c, post, buf, "")
	if isHX(c) {
		return Render(c, views.EditModal(data))
	}
	return Render(c, views.EditPage(data))
}

// handleSave persists an edit session. If a new file was chosen it is
// uploaded first and its returned key becomes the image value; the update
// then submits the full editable field set. On success the modal closes and
// the list is reloaded wholesale so the screen reflects backend truth. On
// failure the modal re-renders with the operator's values intact so the
// save can be retried without re-entering anything.
func (a *App) handleSave(c echo.Context) error {
	id := c.Param("id")
	post, ok := a.Dashboard.Find(id)
	if !ok {
		if isHX(c) {
			return c.NoContent(http.StatusNotFound)
		}
		return RenderStatus(c, http.StatusNotFound, views.NotFound())
	}

	buf := NewEditBuffer(post)
	buf.Text = c.FormValue("text")
	buf.Status = c.FormValue("status")
	buf.DateInput = strings.TrimSpace(c.FormValue("publication_date"))

	ctx := c.Request().Context()

	if file, err := c.FormFile("image"); err == nil && file.Filename != "" && file.Size > 0 {
		if file.Size > maxUploadSize {
			return a.renderEdit(c, http.StatusRequestEntityTooLarge, a.modalData(c, post, buf, tooLargeMsg))
		}
		data, contentType, err := readUpload(file)
		if err != nil {
			a.Log.Error().Err(err).Str("post", id).Msg("read upload failed")
			return a.renderEdit(c, http.StatusBadRequest, a.modalData(c, post, buf, readFileErrMsg))
		}
		key, err := a.Store.UploadImage(ctx, file.Filename, contentType, data)
		if err != nil {
			a.Log.Error().Err(err).Str("post", id).Msg("image upload failed")
			return a.renderEdit(c, http.StatusBadGateway, a.modalData(c, post, buf, saveErrMsg))
		}
		buf.SetImage(key)
	}

	payload, err := buf.Payload()
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			return a.renderEdit(c, http.StatusBadRequest, a.modalData(c, post, buf, dateErrMsg))
		}
		return err
	}

	if err := a.Store.UpdatePost(ctx, id, payload); err != nil {
		a.Log.Error().Err(err).Str("post", id).Msg("save failed")
		return a.renderEdit(c, http.StatusBadGateway, a.modalData(c, post, buf, saveErrMsg))
	}

	setFlash(c, "Post enregistré.")
	a.Dashboard.Refresh(ctx)
	if isHX(c) {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderEdit re-renders the edit surface with the operator's values intact.
// Htmx posts get the fragment swapped back into the modal; plain form posts
// get the full page so the retry stays styled and usable.
func (a *App) renderEdit(c echo.Context, code int, data views.ModalData) error {
	if isHX(c) {
		return RenderStatus(c, code, views.EditModal(data))
	}
	return RenderStatus(c, code, views.EditPage(data))
}

func (a *App) modalData(c echo.Context, post views.Post, buf EditBuffer, errMsg string) views.ModalData {
	imagePath := ""
	if buf.Image != nil {
		imagePath = *buf.Image
	}
	return views.ModalData{
		Post:      post,
		Text:      buf.Text,
		Status:    buf.Status,
		DateInput: buf.DateInput,
		ImageURL:  a.Store.ImageURL(imagePath),
		ErrMsg:    errMsg,
		CSRF:      CsrfToken(c),
	}
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}
	return data, file.Header.Get("Content-Type"), nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
