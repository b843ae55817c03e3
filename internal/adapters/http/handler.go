package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/render"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/app"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

const (
	maxQuestionLen = 500
	maxImageSize   = 1024

	confirmClearPrompt = "Are you sure you want to clear all history?"
)

type Handler struct {
	svc *app.WheelService
}

func NewHandler(svc *app.WheelService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	e.GET("/", h.Page)
	e.POST("/spin", h.PageSpin)
	e.POST("/theme", h.PageToggleTheme)
	e.POST("/history/clear", h.PageClearHistory)

	v1 := e.Group("/v1")
	v1.GET("/state", h.State)
	v1.GET("/wheel.png", h.WheelImage)
	v1.POST("/spin", h.Spin)
	v1.GET("/spin/stream", h.SpinStream)
	v1.GET("/history", h.History)
	v1.DELETE("/history", h.ClearHistory)
	v1.POST("/theme/toggle", h.ToggleTheme)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, toStateResponse(h.svc.Snapshot(), h.svc.Options()))
}

func (h *Handler) WheelImage(c echo.Context) error {
	rotation := h.svc.Snapshot().Rotation
	if raw := c.QueryParam("rotation"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rotation must be a number"})
		}
		rotation = parsed
	}

	size := render.DefaultSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxImageSize {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "size must be an integer between 1 and 1024"})
		}
		size = parsed
	}

	img, err := render.Wheel(h.svc.Options(), rotation, size)
	if err != nil {
		return mapError(c, err)
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return mapError(c, err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) Spin(c echo.Context) error {
	var req SpinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	res, err := h.svc.Spin(c.Request().Context(), req.Question, nil)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSpinResponse(res))
}

func (h *Handler) History(c echo.Context) error {
	return c.JSON(http.StatusOK, toHistoryResponse(h.svc.History(), h.svc.Options()))
}

func (h *Handler) ClearHistory(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))
	if err := h.svc.ClearHistory(c.Request().Context(), confirmed); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleTheme(c echo.Context) error {
	theme, err := h.svc.ToggleTheme(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toThemeResponse(theme))
}

// errorMessage is the user-facing text for a service error.
func errorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyQuestion):
		return http.StatusBadRequest, domain.EmptyQuestionAlert
	case errors.Is(err, domain.ErrSpinInProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, confirmClearPrompt
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func mapError(c echo.Context, err error) error {
	status, msg := errorMessage(err)
	if status == http.StatusInternalServerError {
		requestID, _ := c.Get("request_id").(string)
		slog.Error("internal error", "request_id", requestID, "error", err)
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}
