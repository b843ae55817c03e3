package http

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates renders the HTML page through echo's Renderer interface.
type Templates struct {
	t *template.Template
}

func NewTemplates() *Templates {
	return &Templates{t: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (t *Templates) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return t.t.ExecuteTemplate(w, name, data)
}

type historyLine struct {
	Text      string
	Timestamp string
}

type pageData struct {
	ThemeClass string
	ThemeIcon  string
	WheelURL   string
	Alert      string
	Confirm    bool
	Spinning   bool
	Last       *SpinResponse
	History    []historyLine
}

func (h *Handler) pageData() pageData {
	snap := h.svc.Snapshot()
	set := h.svc.Options()

	lines := make([]historyLine, len(snap.History))
	for i, e := range snap.History {
		lines[i] = historyLine{Text: e.Line(set.Emoji(e.Result)), Timestamp: e.Timestamp}
	}
	d := pageData{
		ThemeClass: snap.Theme.Class(),
		ThemeIcon:  snap.Theme.Icon(),
		WheelURL:   "/v1/wheel.png?rotation=" + strconv.FormatFloat(snap.Rotation, 'f', -1, 64),
		Spinning:   snap.Spinning,
		History:    lines,
	}
	if snap.Last != nil {
		last := toSpinResponse(*snap.Last)
		d.Last = &last
	}
	return d
}

func (h *Handler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", h.pageData())
}

func (h *Handler) PageSpin(c echo.Context) error {
	question := c.FormValue("question")
	if len(question) > maxQuestionLen {
		question = question[:maxQuestionLen]
	}
	if _, err := h.svc.Spin(c.Request().Context(), question, nil); err != nil {
		status, msg := errorMessage(err)
		if status == http.StatusInternalServerError {
			return mapError(c, err)
		}
		d := h.pageData()
		d.Alert = msg
		return c.Render(status, "index.html", d)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) PageToggleTheme(c echo.Context) error {
	if _, err := h.svc.ToggleTheme(c.Request().Context()); err != nil {
		return mapError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// PageClearHistory asks for confirmation first; the confirmation form posts
// back with confirm=yes.
func (h *Handler) PageClearHistory(c echo.Context) error {
	confirmed := c.FormValue("confirm") == "yes"
	err := h.svc.ClearHistory(c.Request().Context(), confirmed)
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, domain.ErrConfirmationRequired):
		d := h.pageData()
		d.Alert = confirmClearPrompt
		d.Confirm = true
		return c.Render(http.StatusOK, "index.html", d)
	default:
		return mapError(c, err)
	}
}
