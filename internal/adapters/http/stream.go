package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// SpinStream upgrades to a WebSocket. Each {"question": ...} message starts a
// spin; the server answers with one "frame" message per animation frame and
// then a single "result" or "error" message.
func (h *Handler) SpinStream(c echo.Context) error {
	requestID, _ := c.Get("request_id").(string)
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied to the client.
		slog.Warn("websocket upgrade failed", "request_id", requestID, "error", err)
		return nil
	}
	defer conn.Close()

	ctx := c.Request().Context()
	for {
		var in SpinRequest
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket read error", "request_id", requestID, "error", err)
			}
			return nil
		}

		// The spin keeps going even if the client goes away; stop writing once it does.
		broken := false
		send := func(m StreamMessage) {
			if broken {
				return
			}
			if err := conn.WriteJSON(m); err != nil {
				broken = true
				slog.Debug("websocket write error", "request_id", requestID, "error", err)
			}
		}

		res, err := h.svc.Spin(ctx, in.Question, func(f domain.Frame) {
			send(StreamMessage{Type: "frame", Frame: &f})
		})
		if err != nil {
			_, msg := errorMessage(err)
			send(StreamMessage{Type: "error", Error: msg})
		} else {
			out := toSpinResponse(res)
			send(StreamMessage{Type: "result", Result: &out})
		}
		if broken {
			return nil
		}
	}
}
